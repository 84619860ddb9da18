package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zeusync/arscene/internal/core/events/bus"
	"github.com/zeusync/arscene/internal/core/native/memory"
	"github.com/zeusync/arscene/internal/core/nodes"
	"github.com/zeusync/arscene/internal/core/observability/log"
)

var defaultScene = nodes.SceneConfig{
	Planes: []nodes.PlaneConfig{{Name: "floor", MinWidth: 0.5, MinHeight: 0.5}},
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build a scene on the in-process engine, then tear it down",
		Long: `Build every plane of a scene description on the in-process engine,
report the engine state, destroy the scene and report what is left.

Without --config a single 0.5 x 0.5 "floor" plane is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &defaultScene
			if configPath != "" {
				loaded, err := nodes.LoadFile(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cfg.LogLevel != "" && !cmd.Flags().Changed("log-level") {
				rootOpts.LogLevel = cfg.LogLevel
			}

			logger, err := rootOpts.logger()
			if err != nil {
				return err
			}

			engine := memory.New(memory.WithLogger(logger))
			scene := nodes.NewScene(engine, nodes.WithSceneLogger(logger), nodes.WithEventBus(bus.New()))
			if _, err = scene.Events().Subscribe(nodes.EventNodeDestroyed, func(e bus.Event) error {
				logger.Info("node destroyed", log.String("node", e.Data().(nodes.NodeEvent).Name))
				return nil
			}); err != nil {
				return err
			}

			if err = cfg.Build(scene); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			st := engine.Stats()
			fmt.Fprintf(out, "planes: %s\n", strings.Join(scene.Names(), ", "))
			fmt.Fprintf(out, "engine: planes=%d delegates=%d digest=%016x\n", st.LivePlanes, st.LiveDelegates, engine.Digest())

			if err = scene.DestroyAll(cmd.Context()); err != nil {
				return err
			}
			st = engine.Stats()
			fmt.Fprintf(out, "teardown: planes=%d delegates=%d violations=%d\n", st.LivePlanes, st.LiveDelegates, st.Violations)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "scene description (.yaml or .json)")

	return cmd
}
