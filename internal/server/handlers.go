package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/ironsheep/backdrop-mcp/internal/background"
	"github.com/ironsheep/backdrop-mcp/internal/imaging"
	"github.com/ironsheep/backdrop-mcp/internal/layout"
	"github.com/ironsheep/backdrop-mcp/internal/logging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "background_open", "background_filter").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
// Recoverable problems are not errors: they are listed in the result's
// "diagnostics" array.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Looks up the background by handle
//  4. Calls the background operation
//  5. Returns the result with the diagnostics the operation reported
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Lifecycle
	case "background_open":
		return s.handleOpen(args)
	case "background_close":
		return s.handleClose(args)

	// Drawing
	case "background_filter":
		return s.handleFilter(args)
	case "background_overlay":
		return s.handleOverlay(args)
	case "background_image":
		return s.handleImage(args)

	// Layout
	case "background_margins":
		return s.handleMargins(args)
	case "background_dimensions":
		return s.handleDimensions(args)
	case "background_sample":
		return s.handleSample(args)
	case "background_regions":
		return s.handleRegions(args)

	// Output
	case "background_preview":
		return s.handlePreview(args)
	case "background_save":
		return s.handleSave(args)
	case "background_save_to":
		return s.handleSaveTo(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// orFull defaults an empty part or region name to "full".
func orFull(s string) string {
	if s == "" {
		return layout.RegionFull
	}
	return s
}

// drained returns the diagnostics recorded since the last call, never nil.
func drained(rec *logging.Recorder) []logging.Diagnostic {
	events := rec.Drain()
	if events == nil {
		return []logging.Diagnostic{}
	}
	return events
}

// handleArgs is embedded by every tool that works on an open background.
type handleArgs struct {
	Handle string `json:"handle"`
}

// OpResult is returned by the drawing tools.
type OpResult struct {
	Handle      string               `json:"handle"`
	Diagnostics []logging.Diagnostic `json:"diagnostics"`
}

// === Lifecycle Handlers ===

type openArgs struct {
	Path           string        `json:"path"`
	Margins        layout.Config `json:"margins"`
	IncludeMargins *bool         `json:"include_margins"`
}

// OpenResult describes a newly opened background.
type OpenResult struct {
	Handle         string               `json:"handle"`
	Name           string               `json:"name"`
	Width          int                  `json:"width"`
	Height         int                  `json:"height"`
	Mode           imaging.Mode         `json:"mode"`
	Geometry       *layout.Geometry     `json:"geometry"`
	IncludeMargins bool                 `json:"include_margins"`
	Diagnostics    []logging.Diagnostic `json:"diagnostics"`
}

func (s *Server) handleOpen(args json.RawMessage) (interface{}, error) {
	var a openArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	rec := logging.NewRecorder(s.logger)
	bg, err := background.Open(a.Path, background.Options{
		Config:   a.Margins.Merge(s.cfg.Margins),
		Reporter: rec,
		Opener:   s.cache,
		Silent:   s.cfg.Silent,
	})
	if err != nil {
		return nil, err
	}
	if a.IncludeMargins != nil {
		bg.SetIncludeMargins(*a.IncludeMargins)
	}

	handle := s.sessions.Add(bg, rec)
	return &OpenResult{
		Handle:         handle,
		Name:           bg.Name(),
		Width:          bg.Size().X,
		Height:         bg.Size().Y,
		Mode:           bg.Mode(),
		Geometry:       bg.Geometry(),
		IncludeMargins: bg.IncludeMargins(),
		Diagnostics:    drained(rec),
	}, nil
}

func (s *Server) handleClose(args json.RawMessage) (interface{}, error) {
	var a handleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.sessions.remove(a.Handle)
	if err != nil {
		return nil, err
	}
	if err := sess.bg.Close(); err != nil {
		return nil, err
	}
	// A later open of the same file must see edits saved over it.
	s.cache.Evict(sess.bg.Path())
	s.logger.Debug("closed background", "handle", a.Handle, "cached", s.cache.Len())
	return &OpResult{Handle: a.Handle, Diagnostics: drained(sess.recorder)}, nil
}

// === Drawing Handlers ===

type filterArgs struct {
	handleArgs
	Operation string   `json:"operation"`
	Part      string   `json:"part"`
	Region    string   `json:"region"`
	Value     *float64 `json:"value"`
}

func (s *Server) handleFilter(args json.RawMessage) (interface{}, error) {
	var a filterArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.sessions.get(a.Handle)
	if err != nil {
		return nil, err
	}

	op := background.FilterOp(a.Operation)
	if a.Operation == "" {
		op = background.FilterBlur
	}
	value := float64(background.DefaultBlurRadius)
	if a.Value != nil {
		value = *a.Value
	}

	sess.bg.Filter(op, orFull(a.Part), orFull(a.Region), value)
	return &OpResult{Handle: a.Handle, Diagnostics: drained(sess.recorder)}, nil
}

type overlayArgs struct {
	handleArgs
	Source string `json:"source"`
	Color  []int  `json:"color"`
	Part   string `json:"part"`
	Region string `json:"region"`
}

func (s *Server) handleOverlay(args json.RawMessage) (interface{}, error) {
	var a overlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.sessions.get(a.Handle)
	if err != nil {
		return nil, err
	}

	src := background.ParseSource(a.Source)
	if a.Color != nil {
		src = background.Color(a.Color...)
	}

	sess.bg.Overlay(src, orFull(a.Part), orFull(a.Region))
	return &OpResult{Handle: a.Handle, Diagnostics: drained(sess.recorder)}, nil
}

type imageArgs struct {
	handleArgs
	Picture      string `json:"picture"`
	Part         string `json:"part"`
	Region       string `json:"region"`
	Borders      *bool  `json:"borders"`
	Anchor       []int  `json:"anchor"`
	Transparency *int   `json:"transparency"`
}

func (s *Server) handleImage(args json.RawMessage) (interface{}, error) {
	var a imageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.sessions.get(a.Handle)
	if err != nil {
		return nil, err
	}

	opts := background.ImageOptions{
		Picture:      a.Picture,
		Part:         orFull(a.Part),
		Region:       orFull(a.Region),
		Transparency: a.Transparency,
	}
	if a.Borders != nil && !*a.Borders {
		opts.Borders = background.BordersOff
	}
	switch len(a.Anchor) {
	case 0:
	case 2:
		opts.Anchor = &image.Point{X: a.Anchor[0], Y: a.Anchor[1]}
	default:
		return nil, fmt.Errorf("anchor needs two coordinates, got %d", len(a.Anchor))
	}

	sess.bg.Image(opts)
	return &OpResult{Handle: a.Handle, Diagnostics: drained(sess.recorder)}, nil
}

// === Layout Handlers ===

type marginsArgs struct {
	handleArgs
	Switch string `json:"switch"`
}

// MarginsResult reports the include-margins flag after a background_margins call.
type MarginsResult struct {
	Handle         string               `json:"handle"`
	IncludeMargins bool                 `json:"include_margins"`
	Diagnostics    []logging.Diagnostic `json:"diagnostics"`
}

func (s *Server) handleMargins(args json.RawMessage) (interface{}, error) {
	var a marginsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.sessions.get(a.Handle)
	if err != nil {
		return nil, err
	}

	include := sess.bg.Margins(background.ParseSwitch(a.Switch))
	return &MarginsResult{
		Handle:         a.Handle,
		IncludeMargins: include,
		Diagnostics:    drained(sess.recorder),
	}, nil
}

type dimensionsArgs struct {
	handleArgs
	Part   string `json:"part"`
	Region string `json:"region"`
}

// DimensionsResult is the size and origin of one region.
type DimensionsResult struct {
	Handle      string               `json:"handle"`
	Width       int                  `json:"width"`
	Height      int                  `json:"height"`
	X           int                  `json:"x"`
	Y           int                  `json:"y"`
	Diagnostics []logging.Diagnostic `json:"diagnostics"`
}

func (s *Server) handleDimensions(args json.RawMessage) (interface{}, error) {
	var a dimensionsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.sessions.get(a.Handle)
	if err != nil {
		return nil, err
	}

	size, origin := sess.bg.Dimensions(orFull(a.Part), orFull(a.Region))
	return &DimensionsResult{
		Handle:      a.Handle,
		Width:       size.X,
		Height:      size.Y,
		X:           origin.X,
		Y:           origin.Y,
		Diagnostics: drained(sess.recorder),
	}, nil
}

type sampleArgs struct {
	handleArgs
	X int `json:"x"`
	Y int `json:"y"`
}

// SampleResult is the colour of one pixel of the working image.
type SampleResult struct {
	Handle string `json:"handle"`
	*imaging.ColorResult
	Diagnostics []logging.Diagnostic `json:"diagnostics"`
}

func (s *Server) handleSample(args json.RawMessage) (interface{}, error) {
	var a sampleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.sessions.get(a.Handle)
	if err != nil {
		return nil, err
	}

	c, err := sess.bg.Sample(a.X, a.Y)
	if err != nil {
		return nil, err
	}
	return &SampleResult{Handle: a.Handle, ColorResult: c, Diagnostics: drained(sess.recorder)}, nil
}

// RegionsResult lists the full region table.
type RegionsResult struct {
	Handle         string           `json:"handle"`
	IncludeMargins bool             `json:"include_margins"`
	Geometry       *layout.Geometry `json:"geometry"`
	Regions        []layout.Entry   `json:"regions"`
}

func (s *Server) handleRegions(args json.RawMessage) (interface{}, error) {
	var a handleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.sessions.get(a.Handle)
	if err != nil {
		return nil, err
	}

	return &RegionsResult{
		Handle:         a.Handle,
		IncludeMargins: sess.bg.IncludeMargins(),
		Geometry:       sess.bg.Geometry(),
		Regions:        sess.bg.Regions(),
	}, nil
}

// === Output Handlers ===

type previewArgs struct {
	handleArgs
	Guides *bool   `json:"guides"`
	Scale  float64 `json:"scale"`
}

// PreviewResult is a rendered preview of the working image.
type PreviewResult struct {
	Handle string `json:"handle"`
	*imaging.EncodedImage
	Diagnostics []logging.Diagnostic `json:"diagnostics"`
}

func (s *Server) handlePreview(args json.RawMessage) (interface{}, error) {
	var a previewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.sessions.get(a.Handle)
	if err != nil {
		return nil, err
	}

	guides := s.cfg.Preview.Guides
	if a.Guides != nil {
		guides = *a.Guides
	}
	if a.Scale == 0 {
		a.Scale = s.cfg.Preview.Scale
	}

	img := sess.bg.Preview(guides)
	if img == nil {
		return nil, background.ErrClosed
	}
	enc, err := imaging.EncodePNGBase64(img, a.Scale)
	if err != nil {
		return nil, err
	}
	return &PreviewResult{Handle: a.Handle, EncodedImage: enc, Diagnostics: drained(sess.recorder)}, nil
}

type saveArgs struct {
	handleArgs
	Name     string   `json:"name"`
	Location []string `json:"location"`
}

// SaveResult reports where a background was written. Saved is false when the
// save was skipped; the diagnostics say why.
type SaveResult struct {
	Handle      string               `json:"handle"`
	Path        string               `json:"path,omitempty"`
	Saved       bool                 `json:"saved"`
	Diagnostics []logging.Diagnostic `json:"diagnostics"`
}

func (s *Server) handleSave(args json.RawMessage) (interface{}, error) {
	var a saveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.sessions.get(a.Handle)
	if err != nil {
		return nil, err
	}

	path, err := sess.bg.Save(a.Name, a.Location...)
	if err != nil {
		return nil, err
	}
	return &SaveResult{
		Handle:      a.Handle,
		Path:        path,
		Saved:       path != "",
		Diagnostics: drained(sess.recorder),
	}, nil
}

type saveToArgs struct {
	Location []string `json:"location"`
}

// SaveToResult reports the process-wide save directory.
type SaveToResult struct {
	SaveDir string `json:"save_dir"`
}

func (s *Server) handleSaveTo(args json.RawMessage) (interface{}, error) {
	var a saveToArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	dir := background.SaveTo(a.Location...)
	s.logger.Info("save location for all further images", "path", dir)
	return &SaveToResult{SaveDir: dir}, nil
}
