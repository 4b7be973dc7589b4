package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"wardrobeapi/models"
)

const analysisInstruction = "Analyze this clothing item and provide its details in JSON format. Your analysis must be comprehensive. " +
	"Provide a specific, descriptive `name` for the item (e.g., 'Blue Denim Shorts', 'Graphic Print T-Shirt'). " +
	"Then, identify its category, gender, colors (primary, secondary, and accent colors with names and hex codes), " +
	"descriptive tags (including pattern, design details like zippers or logos), fabric, texture, fit, suitable season, " +
	"formality level, and layering potential."

func stringSchema(description string, enum []string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description, Enum: enum}
}

// AnalysisSchema constrains the analyzer output to an AnalyzedClothingItem.
func AnalysisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":     stringSchema("A specific, descriptive name for the item (e.g., 'Blue Denim Shorts').", nil),
			"category": stringSchema("The category of the clothing item.", models.Categories),
			"gender":   stringSchema("The target gender for the item.", models.Genders),
			"colors": {
				Type:        genai.TypeArray,
				Description: "List of prominent colors. The first should be the primary color.",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"type": stringSchema("The role of the color (Primary, Secondary, or Accent).", models.ColorRoles),
						"name": stringSchema("The common name of the color (e.g., 'Royal Blue').", nil),
						"hex":  stringSchema("The hex code of the color (e.g., '#4169E1').", nil),
					},
					Required: []string{"type", "name", "hex"},
				},
			},
			"tags": {
				Type:        genai.TypeArray,
				Description: "A list of descriptive tags, including pattern (e.g., 'Striped'), details ('Zipper', 'Logo'), and style ('Color Block').",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
			"fabric":    stringSchema("The primary material of the item (e.g., 'Cotton', 'Polyester').", nil),
			"texture":   stringSchema("The surface texture of the fabric (e.g., 'Soft', 'Matte', 'Shiny').", nil),
			"season":    stringSchema("The suitable season for this item.", models.Seasons),
			"formality": stringSchema("The formality level of the item.", models.Formalities),
			"fit":       stringSchema("The fit or cut of the item (e.g., 'Slim', 'Regular').", models.Fits),
			"layering":  stringSchema("How the item is best used in layering (Base, Mid, or Outer layer).", models.Layerings),
		},
		Required: []string{"name", "category", "gender", "colors", "tags", "fabric", "texture", "season", "formality", "fit", "layering"},
	}
}

// RecommendationSchema is exactly {itemIds: [string], reasoning: string}.
func RecommendationSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"itemIds": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "An array of IDs of the selected clothing items for the outfit.",
			},
			"reasoning": stringSchema("A detailed explanation of why this outfit is suitable, addressing occasion, user style, and color coordination.", nil),
		},
		Required: []string{"itemIds", "reasoning"},
	}
}

func listOrNotSpecified(values []string) string {
	if len(values) == 0 {
		return "Not specified"
	}
	return strings.Join(values, ", ")
}

func profileContext(p models.UserProfile) string {
	prefs := make([]string, len(p.StylePreferences))
	for i, pref := range p.StylePreferences {
		prefs[i] = string(pref)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "- Style Preferences: %s.\n", listOrNotSpecified(prefs))
	fmt.Fprintf(&b, "- Favorite Colors: %s.\n", listOrNotSpecified(p.FavoriteColors))
	if p.Height != "" {
		fmt.Fprintf(&b, "- Height: %s cm.\n", p.Height)
	}
	if p.Weight != "" {
		fmt.Fprintf(&b, "- Weight: %s kg.\n", p.Weight)
	}
	return b.String()
}

// RecommendationPrompt renders the stylist directive for the given wardrobe.
// Image references never leave the process.
func RecommendationPrompt(req models.RecommendationRequest) (string, error) {
	attrs := make([]models.StylingAttributes, len(req.Wardrobe))
	for i, item := range req.Wardrobe {
		attrs[i] = item.StylingAttributes()
	}
	wardrobeJSON, err := json.Marshal(attrs)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("You are an expert personal fashion stylist. Your goal is to create a complete, stylish, and highly personalized outfit from a client's available wardrobe.\n\n")
	b.WriteString("**Client Profile:**\n")
	b.WriteString(profileContext(req.Profile))
	fmt.Fprintf(&b, "\n**Occasion:** %q\n\n", req.Occasion)
	if req.MustUseItemID != "" {
		fmt.Fprintf(&b, "**Constraint:** You MUST include the item with ID %q in your final selection. Build the rest of the outfit around this core piece.\n\n", req.MustUseItemID)
	}
	b.WriteString("**Available Wardrobe (JSON format, see full item details below):**\n")
	b.Write(wardrobeJSON)
	b.WriteString("\n\n")
	b.WriteString(`**Styling Rules & Guidelines:**
1. **Outfit Completeness & Layering:** Select a cohesive set of items. Use the 'layering' property to build from a 'Base' layer outwards to an 'Outer' layer if necessary. An outfit must feel complete (e.g., a top, a bottom, footwear).
2. **One-Piece Garments:** If you select an item from the 'Dress' category (e.g., a dress, jumpsuit, bikini), treat it as the main outfit. Do not add conflicting top or bottom layers. Only add appropriate outerwear (like a jacket) or accessories.
3. **Color Coordination:** Create a harmonious palette using the detailed 'colors' list for each item. The primary color is the most important. Incorporate the user's favorite colors where appropriate.
4. **Pattern & Texture Mixing:** Use the 'tags' to identify patterns. Mix patterns of different scales. Use the 'texture' property to create interesting contrasts (e.g., a soft knit with smooth leather). Anchor patterned or textured items with simpler pieces.
5. **Fit & Style:** The 'fit' of items should combine to create a balanced silhouette. The overall outfit must align with the user's 'stylePreferences'.
6. **Contextual Appropriateness:** Match 'formality' to the occasion and 'fabric'/'season' to likely weather conditions.

**Your Task:**
Based on all the provided details, select the best combination of item IDs.

**Output Format:**
Provide your response as a JSON object with two keys: "itemIds" and "reasoning".
- "itemIds": An array of strings, where each string is the ID of a selected clothing item.
- "reasoning": A detailed paragraph explaining your choices. This reasoning MUST address:
`)
	fmt.Fprintf(&b, "  1. **Occasion Suitability:** Why the items' formality and fabric choices are perfect for %q.\n", req.Occasion)
	b.WriteString(`  2. **Style & Fit:** How the outfit reflects the user's style and creates a flattering silhouette using the 'fit' of the items.
  3. **Color, Pattern & Texture:** Justify the combination of colors, patterns (from tags), and textures.
  4. **Layering & Completeness:** Explain how the layers work together to complete the look.
`)
	return b.String(), nil
}

// OutfitDescription describes every item in order, joined with "worn with".
func OutfitDescription(items []models.ClothingItem) string {
	parts := make([]string, len(items))
	for i, item := range items {
		color, _ := item.PrimaryColor()
		parts[i] = fmt.Sprintf("a %s %s %s made of %s with a %s texture", item.Fit, color.Name, item.Name, item.Fabric, item.Texture)
	}
	return strings.Join(parts, ", worn with ")
}

func TryOnPrompt(description string) string {
	return `You are a virtual fashion stylist. Your task is to realistically dress the person in the provided photo with a specific outfit.
**Instructions:**
1. **Strictly Adhere to the Description:** You MUST use the exact clothing items described. Do not add any extra items, change colors, or modify the style, cut, or length of the garments.
2. **Preserve Identity and Background:** The original person (including their face, hair, and body shape) and the background of the photo must be preserved as much as possible. Only change the clothes.
3. **Be Realistic:** The final image should look natural and believable.

**Outfit to apply:**
A complete outfit consisting of: ` + description + "."
}
