package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ironsheep/qr-code-mcp/internal/qr"
)

// Defaults applied when a generate_qr argument is omitted. They match the
// schema defaults advertised to clients.
const (
	defaultText    = "https://modelcontextprotocol.io"
	defaultBoxSize = 10
	defaultBorder  = 4
	defaultFill    = "black"
	defaultBack    = "white"
)

// pngMIMEType is the only output format generate_qr produces.
const pngMIMEType = "image/png"

// generateQRArgs are the wire arguments of the generate_qr tool. Border is a
// pointer because an explicit zero (no quiet zone) must be distinguishable
// from an omitted value.
type generateQRArgs struct {
	Text            string `json:"text,omitempty"`
	BoxSize         int    `json:"box_size,omitempty"`
	Border          *int   `json:"border,omitempty"`
	ErrorCorrection string `json:"error_correction,omitempty"`
	FillColor       string `json:"fill_color,omitempty"`
	BackColor       string `json:"back_color,omitempty"`
}

// registerTools adds every tool this server exposes.
func registerTools(s *mcp.Server) {
	mcp.AddTool(s, generateQRTool(), handleGenerateQR)
}

// generateQRTool returns the tool definition. The _meta block points hosts
// at the viewer resource; the flat ui/resourceUri key duplicates the nested
// one for hosts that predate nested ui metadata.
func generateQRTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "generate_qr",
		Description: "Generate a QR code from text.",
		InputSchema: generateQRSchema(),
		Meta: mcp.Meta{
			"ui":             map[string]any{"resourceUri": viewURI},
			"ui/resourceUri": viewURI,
		},
	}
}

// generateQRSchema builds the input schema. No property is required: every
// argument has a server-side default.
func generateQRSchema() *jsonschema.Schema {
	return mustSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{
				"type":        "string",
				"description": "The text/URL to encode",
				"default":     defaultText,
			},
			"box_size": map[string]any{
				"type":        "integer",
				"description": "Size of each box in pixels. Default 10",
				"default":     defaultBoxSize,
			},
			"border": map[string]any{
				"type":        "integer",
				"description": "Border size in boxes. Default 4",
				"default":     defaultBorder,
			},
			"error_correction": map[string]any{
				"type":        "string",
				"description": "Error correction level - L(7%), M(15%), Q(25%), H(30%). Unrecognized values fall back to M",
				"default":     "M",
			},
			"fill_color": map[string]any{
				"type":        "string",
				"description": "Foreground color (hex like #FF0000 or name like red). Default black",
				"default":     defaultFill,
			},
			"back_color": map[string]any{
				"type":        "string",
				"description": "Background color (hex like #FFFFFF or name like white). Default white",
				"default":     defaultBack,
			},
		},
	})
}

// mustSchema converts a map-form JSON schema into a typed one.
func mustSchema(m map[string]any) *jsonschema.Schema {
	data, err := json.Marshal(m)
	if err != nil {
		panic(err)
	}
	var schema jsonschema.Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		panic(err)
	}
	return &schema
}

// handleGenerateQR renders a QR code and returns it as image content. Errors
// surface as tool errors on the protocol, never as transport failures.
func handleGenerateQR(ctx context.Context, req *mcp.CallToolRequest, args generateQRArgs) (*mcp.CallToolResult, any, error) {
	img, err := renderQR(args)
	if err != nil {
		return nil, nil, err
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.ImageContent{Data: img.PNG, MIMEType: pngMIMEType},
		},
	}, nil, nil
}

// renderQR applies argument defaults and produces the image.
func renderQR(args generateQRArgs) (*qr.Image, error) {
	if args.Text == "" {
		args.Text = defaultText
	}
	if args.BoxSize == 0 {
		args.BoxSize = defaultBoxSize
	}
	border := defaultBorder
	if args.Border != nil {
		border = *args.Border
	}
	if args.FillColor == "" {
		args.FillColor = defaultFill
	}
	if args.BackColor == "" {
		args.BackColor = defaultBack
	}

	fill, err := qr.ParseColor(args.FillColor)
	if err != nil {
		return nil, fmt.Errorf("fill_color: %w", err)
	}
	back, err := qr.ParseColor(args.BackColor)
	if err != nil {
		return nil, fmt.Errorf("back_color: %w", err)
	}

	if qr.LowContrast(fill, back) {
		log.Printf("generate_qr: low contrast between fill_color=%q and back_color=%q, the code may not scan", args.FillColor, args.BackColor)
	}

	return qr.Generate(args.Text, qr.Options{
		BoxSize: args.BoxSize,
		Border:  border,
		Level:   qr.ParseLevel(args.ErrorCorrection),
		Fill:    fill,
		Back:    back,
	})
}
