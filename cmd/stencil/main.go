// Copyright 2026 Stencil Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/stencilui/stencil"
	"github.com/stencilui/stencil/catalog"
	"github.com/stencilui/stencil/config"
	"github.com/stencilui/stencil/core"
	"github.com/stencilui/stencil/rpc"
	"github.com/stencilui/stencil/search"
	"github.com/urfave/cli/v2"
)

// version is stamped at build time.
var version = "dev"

func main() {
	app := &cli.App{
		Name:    "stencil",
		Usage:   "Component catalog server for AI coding clients",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the YAML config file",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the catalog over JSON-RPC (stdio, or TCP with --listen)",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Usage: "TCP address to listen on (default: stdio)",
					},
					&cli.BoolFlag{
						Name:  "prefetch",
						Usage: "Warm the preview cache before serving",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Search the catalog",
				ArgsUsage: "[term]",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "framework", Usage: "Filter by framework (html, react, vue)"},
					&cli.StringFlag{Name: "tailwind", Usage: "Filter by Tailwind version, e.g. 3.3"},
					&cli.StringFlag{Name: "position", Usage: "Filter by page position"},
					&cli.StringFlag{Name: "context", Usage: "Filter by usage context"},
					&cli.StringFlag{Name: "profile", Usage: "Filter by style profile"},
					&cli.StringFlag{Name: "scale", Usage: "Filter by typography scale"},
					&cli.IntFlag{Name: "limit", Usage: "Maximum number of results"},
				},
			},
			{
				Name:      "get",
				Usage:     "Print one component record",
				ArgsUsage: "<id>",
				Action:    getCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "mode",
						Usage: "Also select the snippet for a color mode (light, dark)",
					},
				},
			},
			{
				Name:   "list",
				Usage:  "List component metadata",
				Action: listCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "category",
						Usage: "Category path, e.g. marketing/page-sections",
					},
					&cli.StringFlag{Name: "framework", Usage: "Filter by framework"},
				},
			},
			{
				Name:   "categories",
				Usage:  "Print the category tree with component counts",
				Action: categoriesCommand,
			},
			{
				Name:   "compose",
				Usage:  "Select a stylistically coherent set of components",
				Action: composeCommand,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:     "slot",
						Usage:    "Slot spec as key=value pairs, e.g. 'name=hero,context=hero,scale=large' (repeatable)",
						Required: true,
					},
				},
			},
			{
				Name:      "preview",
				Usage:     "Fetch a component preview image",
				ArgsUsage: "<id>",
				Action:    previewCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write the image to a file instead of reporting metadata",
					},
				},
			},
			{
				Name:  "cache",
				Usage: "Inspect or clear the preview cache",
				Subcommands: []*cli.Command{
					{Name: "stats", Usage: "Print cache entry count and size", Action: cacheStatsCommand},
					{Name: "clear", Usage: "Drop every cached preview", Action: cacheClearCommand},
				},
			},
			{
				Name:  "auth",
				Usage: "Manage the license credential",
				Subcommands: []*cli.Command{
					{
						Name:      "set",
						Usage:     "Store a license key (only its digest is kept)",
						ArgsUsage: "<key>",
						Action:    authSetCommand,
					},
					{Name: "status", Usage: "Report whether a key is stored", Action: authStatusCommand},
					{Name: "clear", Usage: "Remove the stored key", Action: authClearCommand},
				},
			},
			{
				Name:   "info",
				Usage:  "Print catalog summary information",
				Action: infoCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// openSystem assembles the catalog, engine and cache from the resolved
// configuration.
func openSystem(c *cli.Context) (*stencil.System, *config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path := c.String("config"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadDiscovered()
	}
	if err != nil {
		return nil, nil, err
	}

	system, err := stencil.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	return system, cfg, nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func serveCommand(c *cli.Context) error {
	system, cfg, err := openSystem(c)
	if err != nil {
		return err
	}
	defer system.Close()

	ctx := c.Context
	if c.Bool("prefetch") {
		fetched, err := system.PreviewCache().Prefetch(ctx, nil)
		if err != nil {
			return err
		}
		slog.Info("preview cache warmed", "fetched", fetched)
	}

	server, err := system.NewServer(rpc.WithVersion(version))
	if err != nil {
		return err
	}

	listen := c.String("listen")
	if listen == "" {
		listen = cfg.Listen
	}
	if listen != "" {
		return server.ServeTCP(ctx, listen)
	}
	return server.ServeStdio(ctx)
}

func searchCommand(c *cli.Context) error {
	system, _, err := openSystem(c)
	if err != nil {
		return err
	}
	defer system.Close()

	results, err := system.Engine().Search(search.Query{
		Term:      strings.Join(c.Args().Slice(), " "),
		Framework: c.String("framework"),
		Version:   c.String("tailwind"),
		Position:  c.String("position"),
		Context:   c.String("context"),
		Profile:   c.String("profile"),
		Scale:     c.String("scale"),
		Limit:     c.Int("limit"),
	})
	if err != nil {
		return err
	}
	return printJSON(results)
}

func getCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one component id")
	}

	system, _, err := openSystem(c)
	if err != nil {
		return err
	}
	defer system.Close()

	component, err := system.Store().Lookup(core.ID(c.Args().First()))
	if err != nil {
		return err
	}

	if modeFlag := c.String("mode"); modeFlag != "" {
		mode := core.Mode(strings.ToLower(modeFlag))
		if !mode.Valid() {
			return fmt.Errorf("unknown mode %q", modeFlag)
		}
		return printJSON(map[string]any{
			"component": component,
			"snippet":   component.Snippet(mode),
		})
	}
	return printJSON(component)
}

func listCommand(c *cli.Context) error {
	system, _, err := openSystem(c)
	if err != nil {
		return err
	}
	defer system.Close()

	filter := catalog.ListFilter{}
	if category := c.String("category"); category != "" {
		filter.Category = strings.Split(category, "/")
	}
	if framework := c.String("framework"); framework != "" {
		fw := core.Framework(strings.ToLower(framework))
		if !fw.Valid() {
			return fmt.Errorf("unknown framework %q", framework)
		}
		filter.Framework = fw
	}

	metas := []core.ComponentMeta{}
	for meta := range system.Store().List(filter) {
		metas = append(metas, meta)
	}
	return printJSON(metas)
}

func categoriesCommand(c *cli.Context) error {
	system, _, err := openSystem(c)
	if err != nil {
		return err
	}
	defer system.Close()

	return printJSON(system.Store().Categories())
}

// parseSlot parses a --slot value of comma-separated key=value pairs into
// a named slot query.
func parseSlot(spec string) (search.Slot, error) {
	slot := search.Slot{}
	for _, pair := range strings.Split(spec, ",") {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			return slot, fmt.Errorf("slot pair %q is not key=value", pair)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "name":
			slot.Name = value
		case "term":
			slot.Query.Term = value
		case "framework":
			slot.Query.Framework = value
		case "tailwind", "version":
			slot.Query.Version = value
		case "position":
			slot.Query.Position = value
		case "context":
			slot.Query.Context = value
		case "profile":
			slot.Query.Profile = value
		case "scale":
			slot.Query.Scale = value
		default:
			return slot, fmt.Errorf("unknown slot key %q", key)
		}
	}
	if slot.Name == "" {
		return slot, fmt.Errorf("slot %q has no name", spec)
	}
	return slot, nil
}

func composeCommand(c *cli.Context) error {
	specs := c.StringSlice("slot")
	slots := make([]search.Slot, len(specs))
	for i, spec := range specs {
		slot, err := parseSlot(spec)
		if err != nil {
			return err
		}
		slots[i] = slot
	}

	system, _, err := openSystem(c)
	if err != nil {
		return err
	}
	defer system.Close()

	set, err := system.Engine().CoherentSet(slots)
	if err != nil {
		return err
	}
	return printJSON(set)
}

func previewCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one component id")
	}

	system, _, err := openSystem(c)
	if err != nil {
		return err
	}
	defer system.Close()

	record, err := system.PreviewCache().Get(c.Context, core.ID(c.Args().First()))
	if err != nil {
		return err
	}

	if output := c.String("output"); output != "" {
		if err := os.WriteFile(output, record.Data, 0o644); err != nil {
			return err
		}
		fmt.Printf("wrote %d bytes to %s\n", len(record.Data), output)
		return nil
	}
	return printJSON(map[string]any{
		"componentId": record.ComponentID,
		"contentType": record.ContentType,
		"bytes":       len(record.Data),
		"fetchedAt":   record.FetchedAt,
	})
}

func cacheStatsCommand(c *cli.Context) error {
	system, _, err := openSystem(c)
	if err != nil {
		return err
	}
	defer system.Close()

	stats, err := system.PreviewCache().Stats(c.Context)
	if err != nil {
		return err
	}
	return printJSON(stats)
}

func cacheClearCommand(c *cli.Context) error {
	system, _, err := openSystem(c)
	if err != nil {
		return err
	}
	defer system.Close()

	dropped, err := system.PreviewCache().Clear(c.Context)
	if err != nil {
		return err
	}
	fmt.Printf("dropped %d cached previews\n", dropped)
	return nil
}

func authSetCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one license key")
	}

	system, _, err := openSystem(c)
	if err != nil {
		return err
	}
	defer system.Close()

	if err := system.AuthManager().SetKey(c.Context, c.Args().First()); err != nil {
		return err
	}
	fmt.Println("license key stored")
	return nil
}

func authStatusCommand(c *cli.Context) error {
	system, _, err := openSystem(c)
	if err != nil {
		return err
	}
	defer system.Close()

	status, err := system.AuthManager().Status(c.Context)
	if err != nil {
		return err
	}
	return printJSON(status)
}

func authClearCommand(c *cli.Context) error {
	system, _, err := openSystem(c)
	if err != nil {
		return err
	}
	defer system.Close()

	if err := system.AuthManager().ClearKey(c.Context); err != nil {
		return err
	}
	fmt.Println("license key cleared")
	return nil
}

func infoCommand(c *cli.Context) error {
	system, _, err := openSystem(c)
	if err != nil {
		return err
	}
	defer system.Close()

	store := system.Store()
	status, err := system.AuthManager().Status(c.Context)
	if err != nil {
		return err
	}

	frameworks := map[string]int{}
	for _, component := range store.Components() {
		frameworks[string(component.Framework)]++
	}
	return printJSON(map[string]any{
		"name":       "stencil",
		"version":    version,
		"components": store.Len(),
		"frameworks": frameworks,
		"builtAt":    store.BuiltAt(),
		"licensed":   status.Configured,
	})
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
