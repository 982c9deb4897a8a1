package app

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rook-computer/favicon/internal/render"
)

type App struct {
	Render *render.CanvasRenderer
	Scene  render.Scene
	Logger Logger
}

func New(renderer *render.CanvasRenderer, scene render.Scene) *App {
	return &App{Render: renderer, Scene: scene, Logger: NoopLogger{}}
}

// Generate renders the scene, encodes it as PNG and writes it to outputPath,
// replacing any existing file. The parent directory must already exist.
func (app *App) Generate(outputPath string) error {
	if app.Render == nil {
		app.Render = render.NewCanvasRenderer(render.CanvasWidth, render.CanvasHeight)
	}
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	app.Render.Logger = app.Logger

	img := app.Render.Render(app.Scene)

	// Encode fully before touching the file so a failed encode leaves any
	// previous icon in place.
	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, img); err != nil {
		app.Logger.Errorf("app", "png encode failed: %v", err)
		return fmt.Errorf("encode png: %w", err)
	}
	app.Logger.Infof("app", "encoded %d bytes", buf.Len())

	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		app.Logger.Errorf("app", "write failed: %v", err)
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	app.Logger.Infof("app", "wrote %s", outputPath)
	return nil
}

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
