package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// Shared schema fragments.
var (
	handleProperty = map[string]interface{}{
		"type":        "string",
		"description": "Handle returned by background_open",
	}
	partProperty = map[string]interface{}{
		"type":        "string",
		"description": "Area of the background: full, header or body. Default full",
		"enum":        []string{"full", "header", "body"},
		"default":     "full",
	}
	regionProperty = map[string]interface{}{
		"type": "string",
		"description": "Region within the part: full, inner, left, right, top, bottom, " +
			"or a side with an -incl/-excl suffix (e.g. left-excl). The plain side names " +
			"follow the include-margins flag. Default full",
		"default": "full",
	}
	sidesProperty = map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"left":   map[string]interface{}{"type": "number"},
			"right":  map[string]interface{}{"type": "number"},
			"top":    map[string]interface{}{"type": "number"},
			"bottom": map[string]interface{}{"type": "number"},
		},
	}
	locationProperty = map[string]interface{}{
		"type":        "array",
		"items":       map[string]interface{}{"type": "string"},
		"description": "Directory path components, joined in order",
	}
)

// marginProperties describes the margin overrides accepted by background_open.
// Values below 1 are fractions of the governing dimension, values of 1 or more
// are pixels.
func marginProperties() map[string]interface{} {
	props := map[string]interface{}{
		"header":  sidesProperty,
		"body":    sidesProperty,
		"hbratio": map[string]interface{}{"type": "number", "description": "Share of the height given to the header, in (0,1]. Default 0.2"},
	}
	for _, area := range []string{"header", "body"} {
		for _, side := range []string{"left", "right", "top", "bottom"} {
			props[area+"_"+side] = map[string]interface{}{"type": "number"}
		}
	}
	return props
}

// handleOnly is the schema of a tool taking nothing but a handle.
func handleOnly() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"handle": handleProperty,
		},
		"required": []string{"handle"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Lifecycle
		{
			Name: "background_open",
			Description: "Open a background image and compute its header/body layout. Returns a handle " +
				"for subsequent operations, the image geometry and any diagnostics.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Path to the image file (png, jpg, gif, bmp, tiff, webp)",
					},
					"margins": map[string]interface{}{
						"type":        "object",
						"description": "Margin overrides, flat (header_left) or nested (header.left)",
						"properties":  marginProperties(),
					},
					"include_margins": map[string]interface{}{
						"type":        "boolean",
						"description": "Initial include-margins flag. Default true",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "background_close",
			Description: "Close a background and release its pixel buffers.",
			InputSchema: handleOnly(),
		},

		// Drawing
		{
			Name: "background_filter",
			Description: "Run a filter over one region in place. raw restores the region from the " +
				"original image, blur applies a Gaussian blur, maxFilter and minFilter take the " +
				"brightest or darkest pixel of each 3x3 neighbourhood, None leaves it unchanged.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"handle": handleProperty,
					"operation": map[string]interface{}{
						"type":        "string",
						"description": "Filter operation. Default blur",
						"enum":        []string{"None", "raw", "blur", "maxFilter", "minFilter"},
						"default":     "blur",
					},
					"part":   partProperty,
					"region": regionProperty,
					"value": map[string]interface{}{
						"type":        "number",
						"description": "Blur radius, truncated to an integer. Default 6",
						"default":     6,
					},
				},
				"required": []string{"handle"},
			},
		},
		{
			Name: "background_overlay",
			Description: "Alpha-composite a layer over one region. The layer is the region-sized blank " +
				"sheet, a region-sized sheet of one colour, or a picture file placed at the region origin.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"handle": handleProperty,
					"source": map[string]interface{}{
						"type":        "string",
						"description": "\"blank\", a #rrggbb colour or a picture path. Default blank",
					},
					"color": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "integer"},
						"description": "Colour as [r,g,b] or [r,g,b,a]; overrides source",
					},
					"part":   partProperty,
					"region": regionProperty,
				},
				"required": []string{"handle"},
			},
		},
		{
			Name: "background_image",
			Description: "Paste a picture into one region. With borders on, the picture is clipped to " +
				"the region; with borders off it is pasted whole at the region origin.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"handle": handleProperty,
					"picture": map[string]interface{}{
						"type":        "string",
						"description": "Path to the picture. Omitted pastes a transparent sheet",
					},
					"part":   partProperty,
					"region": regionProperty,
					"borders": map[string]interface{}{
						"type":        "boolean",
						"description": "Clip the picture to the region. Default true",
						"default":     true,
					},
					"anchor": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "integer"},
						"description": "Absolute [x,y] paste position, overriding the region origin",
					},
					"transparency": map[string]interface{}{
						"type":        "integer",
						"description": "Below 255, pictures without alpha are pasted at half opacity. Default 255",
						"default":     255,
					},
				},
				"required": []string{"handle"},
			},
		},

		// Layout
		{
			Name:        "background_margins",
			Description: "Query or change whether the plain side region names include the margin corners.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"handle": handleProperty,
					"switch": map[string]interface{}{
						"type":        "string",
						"description": "toggle, include, exclude or query. Default toggle",
						"enum":        []string{"toggle", "include", "exclude", "query"},
						"default":     "toggle",
					},
				},
				"required": []string{"handle"},
			},
		},
		{
			Name:        "background_dimensions",
			Description: "Get the size and origin of one region.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"handle": handleProperty,
					"part":   partProperty,
					"region": regionProperty,
				},
				"required": []string{"handle"},
			},
		},
		{
			Name:        "background_sample",
			Description: "Read the colour of one pixel of the working image as hex, RGBA and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"handle": handleProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from the left edge)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from the top edge)",
					},
				},
				"required": []string{"handle", "x", "y"},
			},
		},
		{
			Name:        "background_regions",
			Description: "List every part and region with its rectangle, plus the resolved geometry.",
			InputSchema: handleOnly(),
		},

		// Output
		{
			Name:        "background_preview",
			Description: "Render the working image as base64 PNG, optionally with region guides drawn on it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"handle": handleProperty,
					"guides": map[string]interface{}{
						"type":        "boolean",
						"description": "Outline the header and body full and inner regions",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Scale factor for the rendered image",
					},
				},
				"required": []string{"handle"},
			},
		},
		{
			Name: "background_save",
			Description: "Write the working image to disk with the pbc- prefix. The format follows the " +
				"name's extension. A skipped save returns saved=false with a diagnostic.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"handle": handleProperty,
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Output file name. Default the source file name",
					},
					"location": locationProperty,
				},
				"required": []string{"handle"},
			},
		},
		{
			Name:        "background_save_to",
			Description: "Set the directory every later save writes to. An empty location clears it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"location": locationProperty,
				},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
