package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/browser"
	"github.com/tdewolff/argp"
	"gopkg.in/natefinch/lumberjack.v2"

	easel "github.com/gvsucis/f25-spherical-easel"
	"github.com/gvsucis/f25-spherical-easel/plottables"
	"github.com/gvsucis/f25-spherical-easel/prefs"
	"github.com/gvsucis/f25-spherical-easel/renderers/rasterizer"
	"github.com/gvsucis/f25-spherical-easel/renderers/svg"
	"github.com/gvsucis/f25-spherical-easel/settings"
	"github.com/gvsucis/f25-spherical-easel/storage"
)

type Export struct {
	Output   string  `short:"o" default:"easel.svg" desc:"Output file, format by extension (.svg or .png)"`
	Size     float64 `default:"200" desc:"Canvas size in millimeters"`
	Zoom     float64 `default:"1" desc:"Zoom magnification factor"`
	DPMM     float64 `default:"5" desc:"Raster resolution in dots per millimeter"`
	Settings string  `default:"" desc:"Settings YAML file overriding the defaults"`
	DB       string  `default:"" desc:"Preferences database file"`
	User     string  `default:"" desc:"Load the stored default fill style for this user id"`
	Ellipse  string  `default:"20,25 20,-25 0.7 0.55" desc:"Ellipse as 'lat,lon lat,lon a b' in degrees and radians, empty for none"`
	Circle   string  `default:"" desc:"Circle as 'lat,lon r' in degrees and radians, empty for none"`
	Preview  bool    `desc:"Open the exported file"`
	Loglevel string  `default:"warn" desc:"Log level: debug, info, warn, or error"`
	Logfile  string  `default:"" desc:"Write logs to this file with rotation"`
}

type PrefsGet struct {
	DB       string `short:"d" default:"easel.db" desc:"Preferences database file"`
	User     string `index:"0" desc:"User id"`
	Loglevel string `default:"warn" desc:"Log level: debug, info, warn, or error"`
	Logfile  string `default:"" desc:"Write logs to this file with rotation"`
}

type PrefsSet struct {
	DB       string `short:"d" default:"easel.db" desc:"Preferences database file"`
	User     string `index:"0" desc:"User id"`
	Fill     string `index:"1" desc:"Default fill style: noFill, plainFill, or shadeFill"`
	Loglevel string `default:"warn" desc:"Log level: debug, info, warn, or error"`
	Logfile  string `default:"" desc:"Write logs to this file with rotation"`
}

type PrefsClear struct {
	DB       string `short:"d" default:"easel.db" desc:"Preferences database file"`
	User     string `index:"0" desc:"User id"`
	Loglevel string `default:"warn" desc:"Log level: debug, info, warn, or error"`
	Logfile  string `default:"" desc:"Write logs to this file with rotation"`
}

func main() {
	root := argp.NewCmd(&Export{}, "Spherical scene exporter and preference manager")
	root.AddCmd(&PrefsGet{}, "get", "Print a user's stored default fill style")
	root.AddCmd(&PrefsSet{}, "set", "Store a user's default fill style")
	root.AddCmd(&PrefsClear{}, "clear", "Remove a user's stored preferences")
	root.Parse()
	root.PrintHelp()
}

func setupLogging(level, file string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("bad log level %s: %w", level, err)
	}
	slog.SetLogLoggerLevel(lvl)
	if file != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
		})
	}
	return nil
}

// latLon returns the unit vector at a latitude and longitude in degrees.
func latLon(lat, lon float64) easel.Vector3 {
	lat *= math.Pi / 180.0
	lon *= math.Pi / 180.0
	return easel.Vector3{
		X: math.Cos(lat) * math.Cos(lon),
		Y: math.Cos(lat) * math.Sin(lon),
		Z: math.Sin(lat),
	}
}

func parseLatLon(s string) (easel.Vector3, error) {
	var lat, lon float64
	if _, err := fmt.Sscanf(s, "%f,%f", &lat, &lon); err != nil {
		return easel.Vector3{}, fmt.Errorf("bad position %s: expected lat,lon in degrees", s)
	}
	return latLon(lat, lon), nil
}

func (cmd *Export) Run() error {
	if err := setupLogging(cmd.Loglevel, cmd.Logfile); err != nil {
		return err
	}

	cfg := settings.Default()
	if cmd.Settings != "" {
		f, err := os.Open(cmd.Settings)
		if err != nil {
			return err
		}
		cfg, err = settings.Load(f)
		f.Close()
		if err != nil {
			return err
		}
	}

	c := easel.New(cmd.Size, cmd.Size)
	c.SetZoomLimits(cfg.Zoom.MinMagnification, cfg.Zoom.MaxMagnification)
	c.SetZoom(cmd.Zoom)
	c.AddBoundary(easel.Style{
		Fill:        easel.Paint{Color: easel.Transparent},
		Stroke:      easel.Paint{Color: settings.MustColor(cfg.BoundaryCircle.Color)},
		StrokeWidth: cfg.BoundaryCircle.LineWidth,
	})

	if cmd.DB != "" && cmd.User != "" {
		db, err := storage.InitDB(cmd.DB)
		if err != nil {
			return err
		}
		defer db.Close()
		store := prefs.New(prefs.NewSession(cmd.User), storage.New(db), c.Defaults())
		if err := store.Load(context.Background(), ""); err != nil {
			return err
		}
	}

	if cmd.Ellipse != "" {
		fields := strings.Fields(cmd.Ellipse)
		if len(fields) != 4 {
			return fmt.Errorf("bad ellipse %s: expected 'lat,lon lat,lon a b'", cmd.Ellipse)
		}
		f1, err := parseLatLon(fields[0])
		if err != nil {
			return err
		}
		f2, err := parseLatLon(fields[1])
		if err != nil {
			return err
		}
		var a, b float64
		if _, err := fmt.Sscanf(fields[2]+" "+fields[3], "%f %f", &a, &b); err != nil {
			return fmt.Errorf("bad ellipse axes %s %s", fields[2], fields[3])
		}
		widths := plottables.NewStrokeWidths(&cfg.Ellipse, cfg.MinimumStrokeWidth)
		ellipse := plottables.NewEllipse("ellipse", c, cfg, widths)
		ellipse.SetFocus1(f1)
		ellipse.SetFocus2(f2)
		ellipse.SetA(a)
		ellipse.SetB(b)
		ellipse.UpdateDisplay()
		ellipse.AdjustSize()
		ellipse.AddToLayers(&c.Layers)
	}

	if cmd.Circle != "" {
		fields := strings.Fields(cmd.Circle)
		if len(fields) != 2 {
			return fmt.Errorf("bad circle %s: expected 'lat,lon r'", cmd.Circle)
		}
		center, err := parseLatLon(fields[0])
		if err != nil {
			return err
		}
		var r float64
		if _, err := fmt.Sscanf(fields[1], "%f", &r); err != nil {
			return fmt.Errorf("bad circle radius %s", fields[1])
		}
		widths := plottables.NewStrokeWidths(&cfg.Circle, cfg.MinimumStrokeWidth)
		circle := plottables.NewCircle("circle", c, cfg, widths)
		circle.SetCenter(center)
		circle.SetRadius(r)
		circle.UpdateDisplay()
		circle.AdjustSize()
		circle.AddToLayers(&c.Layers)
	}

	var writer easel.Writer
	switch ext := strings.ToLower(filepath.Ext(cmd.Output)); ext {
	case ".svg":
		writer = svg.Writer
	case ".png":
		writer = rasterizer.PNGWriter(cmd.DPMM)
	default:
		return fmt.Errorf("unknown output format %s", ext)
	}
	if err := c.WriteFile(cmd.Output, writer); err != nil {
		return err
	}
	fmt.Println("Wrote", cmd.Output)

	if cmd.Preview {
		return browser.OpenFile(cmd.Output)
	}
	return nil
}

func (cmd *PrefsGet) Run() error {
	if err := setupLogging(cmd.Loglevel, cmd.Logfile); err != nil {
		return err
	}
	if cmd.User == "" {
		return argp.ShowUsage
	}
	db, err := storage.InitDB(cmd.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	rec, err := storage.New(db).LoadPreferences(context.Background(), cmd.User)
	if err != nil {
		return err
	}
	if rec == nil {
		fmt.Println("No stored preferences")
		return nil
	}
	if fill, err := rec.DefaultFill.Value(); err == nil {
		fmt.Println("Default fill:", fill)
	} else {
		fmt.Println("Default fill: not set")
	}
	return nil
}

func (cmd *PrefsSet) Run() error {
	if err := setupLogging(cmd.Loglevel, cmd.Logfile); err != nil {
		return err
	}
	if cmd.User == "" || cmd.Fill == "" {
		return argp.ShowUsage
	}
	fill, err := easel.ParseFillStyle(cmd.Fill)
	if err != nil {
		return err
	}
	db, err := storage.InitDB(cmd.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	store := prefs.New(prefs.NewSession(cmd.User), storage.New(db), easel.NewStyleDefaults())
	store.SetDefaultFill(fill)
	if err := store.Save(context.Background()); err != nil {
		return err
	}
	fmt.Println("Stored default fill", fill, "for", cmd.User)
	return nil
}

func (cmd *PrefsClear) Run() error {
	if err := setupLogging(cmd.Loglevel, cmd.Logfile); err != nil {
		return err
	}
	if cmd.User == "" {
		return argp.ShowUsage
	}
	db, err := storage.InitDB(cmd.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.New(db).DeletePreferences(context.Background(), cmd.User); err != nil {
		return err
	}
	fmt.Println("Removed stored preferences for", cmd.User)
	return nil
}
