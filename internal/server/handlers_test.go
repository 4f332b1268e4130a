package server

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/backdrop-mcp/internal/background"
	"github.com/ironsheep/backdrop-mcp/internal/layout"
)

// createTestPNG writes a white width x height PNG into a temp dir and returns its path.
func createTestPNG(t *testing.T, width, height int) string {
	t.Helper()
	return createColorPNG(t, "bg.png", width, height, color.NRGBA{255, 255, 255, 255})
}

func createColorPNG(t *testing.T, name string, width, height int, c color.NRGBA) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

// call runs a tool through handleToolsCall and decodes the JSON text result.
func call(t *testing.T, s *Server, name string, args map[string]interface{}) (map[string]interface{}, *MCPError) {
	t.Helper()

	paramsJSON, err := json.Marshal(map[string]interface{}{"name": name, "arguments": args})
	if err != nil {
		t.Fatalf("marshal params: %v", err)
	}
	resp := s.handleToolsCall(&MCPRequest{JSONRPC: "2.0", ID: 1, Params: paramsJSON})
	if resp.Error != nil {
		return nil, resp.Error
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) != 1 {
		t.Fatalf("content: got %#v", result["content"])
	}
	if content[0]["type"] != "text" {
		t.Fatalf("content type: got %v, want text", content[0]["type"])
	}

	var out map[string]interface{}
	if err := json.Unmarshal([]byte(content[0]["text"].(string)), &out); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	return out, nil
}

// mustCall is call that fails the test on a tool error.
func mustCall(t *testing.T, s *Server, name string, args map[string]interface{}) map[string]interface{} {
	t.Helper()
	out, mcpErr := call(t, s, name, args)
	if mcpErr != nil {
		t.Fatalf("%s: unexpected error: %s (%v)", name, mcpErr.Message, mcpErr.Data)
	}
	return out
}

// openBackground opens a 100x80 white background and returns its handle.
func openBackground(t *testing.T, s *Server) string {
	t.Helper()
	out := mustCall(t, s, "background_open", map[string]interface{}{"path": createTestPNG(t, 100, 80)})
	return out["handle"].(string)
}

// messages returns the diagnostic messages of kind in a decoded result.
func messages(out map[string]interface{}, kind string) []string {
	var msgs []string
	diags, _ := out["diagnostics"].([]interface{})
	for _, d := range diags {
		m := d.(map[string]interface{})
		if m["kind"] == kind {
			msgs = append(msgs, m["message"].(string))
		}
	}
	return msgs
}

func pixelAt(t *testing.T, s *Server, handle string, x, y int) color.NRGBA {
	t.Helper()
	sess, err := s.sessions.get(handle)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	return sess.bg.Snapshot().NRGBAAt(x, y)
}

func TestHandleOpen(t *testing.T) {
	s := newQuietServer()
	out := mustCall(t, s, "background_open", map[string]interface{}{"path": createTestPNG(t, 100, 80)})

	if out["width"] != float64(100) || out["height"] != float64(80) {
		t.Errorf("size: got %vx%v, want 100x80", out["width"], out["height"])
	}
	if out["name"] != "bg.png" {
		t.Errorf("name: got %v, want bg.png", out["name"])
	}
	if out["include_margins"] != true {
		t.Errorf("include_margins: got %v, want true", out["include_margins"])
	}
	geometry := out["geometry"].(map[string]interface{})
	if geometry["header_height"] != float64(16) || geometry["body_height"] != float64(64) {
		t.Errorf("geometry: got header %v body %v, want 16 and 64", geometry["header_height"], geometry["body_height"])
	}
	if got := messages(out, "info"); len(got) != 1 || got[0] != "opened background" {
		t.Errorf("info diagnostics: got %v", got)
	}
	if s.sessions.Len() != 1 {
		t.Errorf("sessions: got %d, want 1", s.sessions.Len())
	}
}

func TestHandleOpen_Options(t *testing.T) {
	s := newQuietServer()
	out := mustCall(t, s, "background_open", map[string]interface{}{
		"path":            createTestPNG(t, 100, 80),
		"margins":         map[string]interface{}{"hbratio": 0.5, "header": map[string]interface{}{"left": 20}},
		"include_margins": false,
	})

	geometry := out["geometry"].(map[string]interface{})
	if geometry["header_height"] != float64(40) {
		t.Errorf("header_height: got %v, want 40", geometry["header_height"])
	}
	if out["include_margins"] != false {
		t.Errorf("include_margins: got %v, want false", out["include_margins"])
	}

	dims := mustCall(t, s, "background_dimensions", map[string]interface{}{
		"handle": out["handle"], "part": "header", "region": "left",
	})
	if dims["width"] != float64(20) {
		t.Errorf("header left width: got %v, want 20", dims["width"])
	}
}

func TestHandleOpen_Silent(t *testing.T) {
	cfg := newQuietServer().cfg
	cfg.Silent = true
	s := NewWithConfig(cfg, nil)

	out := mustCall(t, s, "background_open", map[string]interface{}{"path": createTestPNG(t, 100, 80)})
	if got := messages(out, "info"); len(got) != 0 {
		t.Errorf("silent server reported info: %v", got)
	}
}

func TestHandleOpen_ConfigMargins(t *testing.T) {
	cfg := newQuietServer().cfg
	cfg.Margins.HBRatio = layout.Float(0.25)
	s := NewWithConfig(cfg, nil)

	out := mustCall(t, s, "background_open", map[string]interface{}{"path": createTestPNG(t, 100, 80)})
	geometry := out["geometry"].(map[string]interface{})
	if geometry["header_height"] != float64(20) {
		t.Errorf("header_height: got %v, want 20", geometry["header_height"])
	}

	out = mustCall(t, s, "background_open", map[string]interface{}{
		"path":    createTestPNG(t, 100, 80),
		"margins": map[string]interface{}{"hbratio": 0.5},
	})
	geometry = out["geometry"].(map[string]interface{})
	if geometry["header_height"] != float64(40) {
		t.Errorf("argument hbratio should win: got %v, want 40", geometry["header_height"])
	}
}

func TestHandleOpen_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{"missing path", map[string]interface{}{}, "path is required"},
		{"missing file", map[string]interface{}{"path": filepath.Join(dir, "none.png")}, "failed to open background"},
		{"bad extension", map[string]interface{}{"path": filepath.Join(dir, "notes.txt")}, "unrecognised image extension"},
		{"bad ratio", map[string]interface{}{"path": "", "margins": map[string]interface{}{"hbratio": 1.5}}, "hbratio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newQuietServer()
			if tt.name == "bad ratio" {
				tt.args["path"] = createTestPNG(t, 100, 80)
			}
			_, mcpErr := call(t, s, "background_open", tt.args)
			if mcpErr == nil {
				t.Fatal("expected an error")
			}
			if mcpErr.Code != -32000 {
				t.Errorf("code: got %d, want -32000", mcpErr.Code)
			}
			if data, _ := mcpErr.Data.(string); !strings.Contains(data, tt.want) {
				t.Errorf("data: got %q, want it to contain %q", data, tt.want)
			}
			if s.sessions.Len() != 0 {
				t.Errorf("failed open left %d sessions", s.sessions.Len())
			}
		})
	}
}

func TestHandleClose(t *testing.T) {
	s := newQuietServer()
	handle := openBackground(t, s)

	if s.cache.Len() != 1 {
		t.Fatalf("cached images after open: got %d, want 1", s.cache.Len())
	}

	mustCall(t, s, "background_close", map[string]interface{}{"handle": handle})
	if s.sessions.Len() != 0 {
		t.Errorf("sessions after close: got %d, want 0", s.sessions.Len())
	}
	if s.cache.Len() != 0 {
		t.Errorf("cached images after close: got %d, want 0", s.cache.Len())
	}

	_, mcpErr := call(t, s, "background_filter", map[string]interface{}{"handle": handle})
	if mcpErr == nil || !strings.Contains(mcpErr.Data.(string), "unknown handle") {
		t.Errorf("closed handle: got %v, want unknown handle error", mcpErr)
	}
}

func TestHandleClose_ReopenSeesNewContent(t *testing.T) {
	s := newQuietServer()
	path := createTestPNG(t, 100, 80)

	out := mustCall(t, s, "background_open", map[string]interface{}{"path": path})
	mustCall(t, s, "background_close", map[string]interface{}{"handle": out["handle"]})

	red := createColorPNG(t, "red.png", 100, 80, color.NRGBA{255, 0, 0, 255})
	data, err := os.ReadFile(red)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	out = mustCall(t, s, "background_open", map[string]interface{}{"path": path})
	if got := pixelAt(t, s, out["handle"].(string), 50, 40); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("reopened pixel: got %v, want red", got)
	}
}

func TestHandles_Invalid(t *testing.T) {
	s := newQuietServer()
	tools := []string{
		"background_close", "background_filter", "background_overlay", "background_image",
		"background_margins", "background_dimensions", "background_sample", "background_regions",
		"background_preview", "background_save",
	}

	for _, name := range tools {
		t.Run(name, func(t *testing.T) {
			_, mcpErr := call(t, s, name, map[string]interface{}{"handle": "not-a-handle"})
			if mcpErr == nil {
				t.Fatal("expected an error for an invalid handle")
			}
			if !strings.Contains(mcpErr.Data.(string), "invalid handle") {
				t.Errorf("data: got %v", mcpErr.Data)
			}
		})
	}
}

func TestHandleOverlay(t *testing.T) {
	tests := []struct {
		name   string
		args   map[string]interface{}
		inside func(c color.NRGBA) bool
		warns  int
	}{
		{
			"color array",
			map[string]interface{}{"color": []int{255, 0, 0}},
			func(c color.NRGBA) bool { return c.R >= 250 && c.G <= 5 && c.B <= 5 },
			0,
		},
		{
			"hex source",
			map[string]interface{}{"source": "#0000ff"},
			func(c color.NRGBA) bool { return c.R <= 5 && c.G <= 5 && c.B >= 250 },
			0,
		},
		{
			"blank",
			map[string]interface{}{"source": "blank"},
			func(c color.NRGBA) bool { return c.R < 250 && c.R == c.G && c.G == c.B },
			0,
		},
		{
			// Painted with the error colour, a translucent yellow-green.
			"bad color",
			map[string]interface{}{"color": []int{1, 2}},
			func(c color.NRGBA) bool { return c.G >= 250 && c.B < 200 },
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newQuietServer()
			handle := openBackground(t, s)

			args := map[string]interface{}{"handle": handle, "part": "header", "region": "inner"}
			for k, v := range tt.args {
				args[k] = v
			}
			out := mustCall(t, s, "background_overlay", args)

			if got := len(messages(out, "warning")); got != tt.warns {
				t.Errorf("warnings: got %d, want %d (%v)", got, tt.warns, messages(out, "warning"))
			}
			if got := pixelAt(t, s, handle, 50, 8); !tt.inside(got) {
				t.Errorf("inside pixel: got %v", got)
			}
			if got := pixelAt(t, s, handle, 5, 8); got != (color.NRGBA{255, 255, 255, 255}) {
				t.Errorf("outside pixel: got %v, want white", got)
			}
		})
	}
}

func TestHandleFilter(t *testing.T) {
	s := newQuietServer()
	handle := openBackground(t, s)

	mustCall(t, s, "background_overlay", map[string]interface{}{"handle": handle, "color": []int{0, 0, 0}})
	if got := pixelAt(t, s, handle, 50, 40); got.R != 0 {
		t.Fatalf("overlay did not paint: %v", got)
	}

	out := mustCall(t, s, "background_filter", map[string]interface{}{
		"handle": handle, "operation": "raw", "part": "body",
	})
	if got := messages(out, "warning"); len(got) != 0 {
		t.Errorf("unexpected warnings: %v", got)
	}
	if got := pixelAt(t, s, handle, 50, 40); got.R != 255 {
		t.Errorf("raw did not restore body: %v", got)
	}
	if got := pixelAt(t, s, handle, 50, 8); got.R != 0 {
		t.Errorf("raw leaked into header: %v", got)
	}

	out = mustCall(t, s, "background_filter", map[string]interface{}{"handle": handle, "operation": "sharpen"})
	if got := messages(out, "warning"); len(got) != 1 {
		t.Errorf("unknown operation warnings: got %v, want 1", got)
	}

	// Defaults to a blur over the full image.
	out = mustCall(t, s, "background_filter", map[string]interface{}{"handle": handle})
	if got := messages(out, "info"); len(got) != 1 || got[0] != "filter applied" {
		t.Errorf("info diagnostics: got %v", got)
	}
	diags := out["diagnostics"].([]interface{})
	fields := diags[0].(map[string]interface{})["fields"].(map[string]interface{})
	if fields["operation"] != "blur" {
		t.Errorf("default operation: got %v, want blur", fields["operation"])
	}
}

func TestHandleImage(t *testing.T) {
	s := newQuietServer()
	handle := openBackground(t, s)
	picture := createColorPNG(t, "logo.png", 30, 30, color.NRGBA{255, 0, 0, 255})

	// Clipped to the header inner region (10,3)-(90,13).
	mustCall(t, s, "background_image", map[string]interface{}{
		"handle": handle, "picture": picture, "part": "header", "region": "inner",
	})
	if got := pixelAt(t, s, handle, 20, 5); got.R != 255 || got.G != 0 {
		t.Errorf("inside picture: got %v, want red", got)
	}
	if got := pixelAt(t, s, handle, 20, 20); got.G != 255 {
		t.Errorf("clipped pixel: got %v, want white", got)
	}

	// Borders off pastes the whole picture.
	mustCall(t, s, "background_image", map[string]interface{}{
		"handle": handle, "picture": picture, "part": "body", "region": "inner", "borders": false,
	})
	if got := pixelAt(t, s, handle, 40, 50); got.R != 255 || got.G != 0 {
		t.Errorf("borders off: got %v, want red", got)
	}

	_, mcpErr := call(t, s, "background_image", map[string]interface{}{"handle": handle, "anchor": []int{1}})
	if mcpErr == nil {
		t.Error("expected an error for a one-coordinate anchor")
	}

	out := mustCall(t, s, "background_image", map[string]interface{}{
		"handle": handle, "picture": filepath.Join(t.TempDir(), "missing.png"),
	})
	if got := messages(out, "warning"); len(got) != 1 {
		t.Errorf("missing picture warnings: got %v, want 1", got)
	}
}

func TestHandleMargins(t *testing.T) {
	s := newQuietServer()
	handle := openBackground(t, s)

	steps := []struct {
		sw   string
		want bool
	}{
		{"", false},
		{"query", false},
		{"toggle", true},
		{"exclude", false},
		{"include", true},
	}
	for _, step := range steps {
		out := mustCall(t, s, "background_margins", map[string]interface{}{"handle": handle, "switch": step.sw})
		if out["include_margins"] != step.want {
			t.Errorf("switch %q: got %v, want %v", step.sw, out["include_margins"], step.want)
		}
	}

	out := mustCall(t, s, "background_margins", map[string]interface{}{"handle": handle, "switch": "maybe"})
	if got := messages(out, "warning"); len(got) != 1 {
		t.Errorf("invalid switch warnings: got %v, want 1", got)
	}
}

func TestHandleDimensions(t *testing.T) {
	s := newQuietServer()
	handle := openBackground(t, s)

	tests := []struct {
		part, region     string
		w, h, x, y, warn int
	}{
		{"", "", 100, 80, 0, 0, 0},
		{"header", "inner", 80, 10, 10, 3, 0},
		{"body", "inner", 70, 52, 15, 22, 0},
		{"body", "nowhere", 100, 64, 0, 16, 1},
	}
	for _, tt := range tests {
		t.Run(tt.part+"/"+tt.region, func(t *testing.T) {
			out := mustCall(t, s, "background_dimensions", map[string]interface{}{
				"handle": handle, "part": tt.part, "region": tt.region,
			})
			got := []interface{}{out["width"], out["height"], out["x"], out["y"]}
			want := []interface{}{float64(tt.w), float64(tt.h), float64(tt.x), float64(tt.y)}
			for i := range got {
				if got[i] != want[i] {
					t.Errorf("got %v, want %v", got, want)
					break
				}
			}
			if n := len(messages(out, "warning")); n != tt.warn {
				t.Errorf("warnings: got %d, want %d", n, tt.warn)
			}
		})
	}
}

func TestHandleSample(t *testing.T) {
	s := newQuietServer()
	path := createColorPNG(t, "red.png", 100, 80, color.NRGBA{255, 0, 0, 255})
	out := mustCall(t, s, "background_open", map[string]interface{}{"path": path})
	handle := out["handle"].(string)

	tests := []struct {
		name    string
		x, y    int
		wantHex string
		wantErr bool
	}{
		{"origin", 0, 0, "#FF0000", false},
		{"last pixel", 99, 79, "#FF0000", false},
		{"out of bounds", 100, 8, "", true},
		{"negative", -1, 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, mcpErr := call(t, s, "background_sample", map[string]interface{}{
				"handle": handle, "x": tt.x, "y": tt.y,
			})
			if tt.wantErr {
				if mcpErr == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if mcpErr != nil {
				t.Fatalf("unexpected error: %v", mcpErr.Data)
			}
			if out["hex"] != tt.wantHex {
				t.Errorf("hex: got %v, want %s", out["hex"], tt.wantHex)
			}
			if out["handle"] != handle {
				t.Errorf("handle: got %v", out["handle"])
			}
			rgba := out["rgba"].(map[string]interface{})
			if rgba["a"] != float64(255) {
				t.Errorf("alpha: got %v, want 255", rgba["a"])
			}
			hsl := out["hsl"].(map[string]interface{})
			if hsl["h"] != float64(0) || hsl["s"] != float64(100) || hsl["l"] != float64(50) {
				t.Errorf("hsl: got %v, want h=0 s=100 l=50", hsl)
			}
		})
	}
}

func TestHandleRegions(t *testing.T) {
	s := newQuietServer()
	handle := openBackground(t, s)

	out := mustCall(t, s, "background_regions", map[string]interface{}{"handle": handle})
	regions, ok := out["regions"].([]interface{})
	if !ok {
		t.Fatalf("regions: got %T", out["regions"])
	}
	if want := len(layout.Parts) * len(layout.RegionNames); len(regions) != want {
		t.Errorf("regions: got %d, want %d", len(regions), want)
	}
	if out["geometry"] == nil {
		t.Error("geometry missing")
	}
}

func TestHandlePreview(t *testing.T) {
	s := newQuietServer()
	handle := openBackground(t, s)

	tests := []struct {
		name          string
		args          map[string]interface{}
		width, height float64
	}{
		{"default scale", map[string]interface{}{}, 100, 80},
		{"half scale", map[string]interface{}{"scale": 0.5}, 50, 40},
		{"no guides", map[string]interface{}{"guides": false}, 100, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := map[string]interface{}{"handle": handle}
			for k, v := range tt.args {
				args[k] = v
			}
			out := mustCall(t, s, "background_preview", args)
			if out["width"] != tt.width || out["height"] != tt.height {
				t.Errorf("size: got %vx%v, want %vx%v", out["width"], out["height"], tt.width, tt.height)
			}
			if out["mime_type"] != "image/png" {
				t.Errorf("mime_type: got %v", out["mime_type"])
			}
			if out["image_base64"] == "" {
				t.Error("image_base64 is empty")
			}
		})
	}

	// Guides are drawn on a copy.
	if got := pixelAt(t, s, handle, 0, 0); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("preview changed the working image: %v", got)
	}
}

func TestHandleSave(t *testing.T) {
	background.SaveTo()
	t.Cleanup(func() { background.SaveTo() })

	s := newQuietServer()
	handle := openBackground(t, s)
	dir := t.TempDir()

	out := mustCall(t, s, "background_save", map[string]interface{}{
		"handle": handle, "name": "slide.png", "location": []string{dir},
	})
	want := filepath.Join(dir, background.OutputPrefix+"slide.png")
	if out["path"] != want || out["saved"] != true {
		t.Errorf("save: got path %v saved %v, want %s", out["path"], out["saved"], want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("output not written: %v", err)
	}

	out = mustCall(t, s, "background_save", map[string]interface{}{
		"handle": handle, "location": []string{filepath.Join(dir, "missing")},
	})
	if out["saved"] != false {
		t.Errorf("save to missing dir: got saved %v, want false", out["saved"])
	}
	if got := messages(out, "warning"); len(got) != 1 {
		t.Errorf("warnings: got %v, want 1", got)
	}
}

func TestHandleSaveTo(t *testing.T) {
	background.SaveTo()
	t.Cleanup(func() { background.SaveTo() })

	s := newQuietServer()
	handle := openBackground(t, s)
	dir := t.TempDir()

	out := mustCall(t, s, "background_save_to", map[string]interface{}{"location": []string{dir, "."}})
	if out["save_dir"] != dir {
		t.Errorf("save_dir: got %v, want %s", out["save_dir"], dir)
	}

	out = mustCall(t, s, "background_save", map[string]interface{}{"handle": handle})
	if want := filepath.Join(dir, background.OutputPrefix+"bg.png"); out["path"] != want {
		t.Errorf("path: got %v, want %s", out["path"], want)
	}

	out = mustCall(t, s, "background_save_to", map[string]interface{}{})
	if out["save_dir"] != "" {
		t.Errorf("cleared save_dir: got %v", out["save_dir"])
	}
}

func TestHandleToolsCall_InvalidTool(t *testing.T) {
	s := newQuietServer()
	_, mcpErr := call(t, s, "nonexistent_tool", map[string]interface{}{})
	if mcpErr == nil {
		t.Fatal("expected an error for an unknown tool")
	}
	if mcpErr.Code != -32000 {
		t.Errorf("code: got %d, want -32000", mcpErr.Code)
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := newQuietServer()
	resp := s.handleToolsCall(&MCPRequest{JSONRPC: "2.0", ID: 1, Params: json.RawMessage(`{"name":`)})
	if resp.Error == nil || resp.Error.Code != -32602 {
		t.Errorf("got %v, want -32602", resp.Error)
	}
}

func TestHandleToolsCall_BadArguments(t *testing.T) {
	s := newQuietServer()
	resp := s.handleToolsCall(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Params:  json.RawMessage(`{"name":"background_open","arguments":{"path":7}}`),
	})
	if resp.Error == nil || resp.Error.Code != -32000 {
		t.Errorf("got %v, want -32000", resp.Error)
	}
}
