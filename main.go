package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hako/durafmt"
	dark "github.com/thiagokokada/dark-mode-go"

	"euikit/backend"
	"euikit/eui"
)

var (
	baseDir   string
	descPath  string
	debugMode bool
	treeMode  bool
)

func main() {
	flag.StringVar(&descPath, "desc", "", "UI description file (.json, .yaml or .yml)")
	flag.BoolVar(&debugMode, "debug", false, "verbose logging and control outlines")
	flag.BoolVar(&treeMode, "tree", false, "write the control tree to debug/tree.json after loading")
	themeName := flag.String("theme", "", "theme to use instead of the description's (Dark, Light, Auto)")
	listThemes := flag.Bool("themes", false, "list the built-in themes and exit")
	flag.Parse()

	baseDir = os.Getenv("PWD")
	if baseDir == "" {
		var err error
		if baseDir, err = os.Getwd(); err != nil {
			log.Fatalf("get working directory: %v", err)
		}
	}

	setupLogging(debugMode)
	eui.DebugMode = debugMode
	if err := loadSettings(); err != nil {
		logError("settings: %v", err)
	}

	if *listThemes {
		names, err := eui.ListThemes()
		if err != nil {
			log.Fatalf("list themes: %v", err)
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return
	}

	if descPath == "" {
		descPath = gs.LastDescription
	}
	if descPath == "" {
		descPath = filepath.Join(baseDir, "ui", "demo.yaml")
	}
	if *themeName != "" {
		gs.Theme = *themeName
	}
	os.Exit(run())
}

func run() (status int) {
	defer func() {
		if r := recover(); r != nil {
			logError("panic: %v\n%s", r, debug.Stack())
			status = 2
		}
	}()

	b := backend.New()
	ctx := eui.NewContext(b.Textures)
	ctx.DetectDark = dark.IsDarkMode
	app := eui.NewApplication(b, ctx)

	if err := app.LoadDescriptionFile(descPath); err != nil {
		logError("load %s: %v", descPath, err)
		return 1
	}
	logDebug("loaded %s: %d windows, %s", descPath, len(app.Windows()), ctx.Textures)
	if app.UseSystemFileDialog {
		ctx.Dialogs = backend.SystemDialog{StartDir: filepath.Dir(descPath)}
	}
	if gs.Theme != "" {
		th, err := eui.LoadTheme(gs.Theme, ctx.DetectDark)
		if err != nil {
			logError("theme %s: %v", gs.Theme, err)
		} else {
			app.SetTheme(th)
		}
	}
	app.SetScale(gs.Scale)
	app.Events = &eui.EventHandler{Handle: func(ev eui.UIEvent) { handleEvent(app, ev) }}
	if treeMode {
		if err := app.DumpTree(); err != nil {
			logError("dump tree: %v", err)
		}
	}

	ebiten.SetVsyncEnabled(gs.Vsync)
	err := backend.Run(app, b)
	logDebug("uptime %s", durafmt.Parse(app.Uptime()).LimitFirstN(2))

	if abs, aerr := filepath.Abs(descPath); aerr == nil && abs != gs.LastDescription {
		gs.LastDescription = abs
		settingsDirty = true
	}
	if gs.SaveOnExit {
		if serr := saveSettings(); serr != nil {
			logError("save settings: %v", serr)
		}
	}
	if err != nil {
		return 1
	}
	return 0
}
