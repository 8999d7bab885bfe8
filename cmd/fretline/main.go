// Package main provides the CLI entrypoint for fretline.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fretline/fretline/internal/chord"
	"github.com/fretline/fretline/internal/config"
	"github.com/fretline/fretline/internal/diagram"
	"github.com/fretline/fretline/internal/midifile"
	"github.com/fretline/fretline/internal/server"
	"github.com/fretline/fretline/internal/voicelead"
	"github.com/fretline/fretline/internal/voicing"
)

const (
	defaultTuning  = "C"
	defaultMinFret = 0
	defaultMaxFret = 12
	defaultMaxSpan = 4
	defaultBest    = 1

	maxFretLimit = 21
	maxSpanLimit = 5

	defaultServeAddr = ":8080"
)

var (
	tuningName string

	voicingMinFret   uint8
	voicingMaxFret   uint8
	voicingMaxSpan   uint8
	voicingTranspose int

	chartAll bool

	leadBest     int
	leadMIDIPath string

	midiTempo    float64
	midiVelocity uint8

	serveAddr string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fretline",
		Short:         "Ukulele chord voicings and voice leading",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&tuningName, "tuning", defaultTuning, "ukulele tuning (C, D or G)")

	rootCmd.AddCommand(newChordsCmd())
	rootCmd.AddCommand(newChartCmd())
	rootCmd.AddCommand(newNameCmd())
	rootCmd.AddCommand(newVoiceLeadCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func addVoicingFlags(cmd *cobra.Command) {
	cmd.Flags().Uint8Var(&voicingMinFret, "min-fret", defaultMinFret, "lowest fret used for voicings")
	cmd.Flags().Uint8Var(&voicingMaxFret, "max-fret", defaultMaxFret, "highest fret used for voicings")
	cmd.Flags().Uint8Var(&voicingMaxSpan, "max-span", defaultMaxSpan, "widest fret stretch within a voicing")
	cmd.Flags().IntVar(&voicingTranspose, "transpose", 0, "transpose by this many semitones before searching")
}

func newChordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chords",
		Short: "List supported chord types and symbols",
		Args:  cobra.NoArgs,
		RunE:  runChordsCmd,
	}
}

func runChordsCmd(cmd *cobra.Command, _ []string) error {
	if err := diagram.WriteChordTypes(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart CHORD",
		Short: "Show fingering charts for a chord",
		Args:  cobra.ExactArgs(1),
		RunE:  runChartCmd,
	}
	addVoicingFlags(cmd)
	cmd.Flags().BoolVar(&chartAll, "all", false, "show all matching voicings")
	return cmd
}

func runChartCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg, err := voicingConfigFrom(cmd, fileCfg)
	if err != nil {
		return err
	}

	c, err := chord.Parse(args[0])
	if err != nil {
		return err
	}
	c = c.Transpose(voicingTranspose)

	voicings, err := voicing.Generate(c, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(voicings) == 0 {
		if _, err := fmt.Fprintln(out, "No matching chord voicing was found"); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	if _, err := fmt.Fprintf(out, "[%s]\n\n", c); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	color := shouldUseColor(out)
	for _, v := range voicings {
		if err := writeChart(out, v, cfg.MaxSpan, color); err != nil {
			return err
		}
		if !chartAll {
			break
		}
	}
	return nil
}

func newNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name PATTERN",
		Short: "Name the chords spelled by a fret pattern",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runNameCmd,
	}
}

func runNameCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	tuning, err := tuningFrom(cmd, fileCfg)
	if err != nil {
		return err
	}

	pattern, err := voicing.ParseFretPattern(strings.Join(args, " "))
	if err != nil {
		return err
	}
	v := voicing.FromPattern(pattern, tuning)

	out := cmd.OutOrStdout()
	chords := v.Chords()
	if len(chords) == 0 {
		if _, err := fmt.Fprintln(out, "No matching chord was found"); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	for _, c := range chords {
		if _, err := fmt.Fprintln(out, c); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newVoiceLeadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "voice-lead CHORD...",
		Short: "Find smooth voicing paths through a chord progression",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runVoiceLeadCmd,
	}
	addVoicingFlags(cmd)
	cmd.Flags().IntVar(&leadBest, "best", defaultBest, "number of cheapest paths to show")
	cmd.Flags().StringVar(&leadMIDIPath, "midi", "", "write the best path to this MIDI file")
	return cmd
}

func runVoiceLeadCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg, err := voicingConfigFrom(cmd, fileCfg)
	if err != nil {
		return err
	}
	if leadBest < 1 {
		return fmt.Errorf("--best must be greater than 0")
	}
	applyFloatConfig(cmd, "tempo", &midiTempo, fileCfg.MIDI.Tempo)
	applyUint8Config(cmd, "velocity", &midiVelocity, fileCfg.MIDI.Velocity)

	seq, err := chord.ParseSequence(strings.Join(args, " "))
	if err != nil {
		return err
	}
	seq = seq.Transpose(voicingTranspose)

	graph := voicelead.NewGraph(cfg)
	if err := graph.Add(seq); err != nil {
		return err
	}
	paths := graph.Paths(leadBest)

	out := cmd.OutOrStdout()
	if len(paths) == 0 {
		if _, err := fmt.Fprintln(out, "No matching chord voicing sequence was found"); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	color := shouldUseColor(out)
	for i, path := range paths {
		if leadBest > 1 {
			if _, err := fmt.Fprintf(out, "Path %d (cost %d)\n\n", i+1, path.Cost); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		for j, v := range path.Voicings {
			if _, err := fmt.Fprintf(out, "[%s]\n\n", seq[j]); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			if err := writeChart(out, v, cfg.MaxSpan, color); err != nil {
				return err
			}
		}
	}

	if leadMIDIPath != "" {
		opts := midifile.Options{
			Name:     seq.String(),
			Tempo:    midiTempo,
			Velocity: midiVelocity,
		}
		if err := midifile.WriteFile(leadMIDIPath, paths[0].Voicings, cfg.Tuning, opts); err != nil {
			return fmt.Errorf("failed to write MIDI file: %w", err)
		}
		logErrf("Wrote %s\n", leadMIDIPath)
	}
	return nil
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve chord lookups over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServeCmd,
	}
	addVoicingFlags(cmd)
	cmd.Flags().StringVar(&serveAddr, "addr", defaultServeAddr, "listen address")
	return cmd
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg, err := voicingConfigFrom(cmd, fileCfg)
	if err != nil {
		return err
	}
	applyStringConfig(cmd, "addr", &serveAddr, fileCfg.Serve.Addr)

	return server.New(cfg).ListenAndServe(serveAddr)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func voicingConfigFrom(cmd *cobra.Command, fileCfg config.FileConfig) (voicing.Config, error) {
	applyStringConfig(cmd, "tuning", &tuningName, fileCfg.Voicing.Tuning)
	applyUint8Config(cmd, "min-fret", &voicingMinFret, fileCfg.Voicing.MinFret)
	applyUint8Config(cmd, "max-fret", &voicingMaxFret, fileCfg.Voicing.MaxFret)
	applyUint8Config(cmd, "max-span", &voicingMaxSpan, fileCfg.Voicing.MaxSpan)

	if voicingMinFret > maxFretLimit {
		return voicing.Config{}, fmt.Errorf("--min-fret must be between 0 and %d", maxFretLimit)
	}
	if voicingMaxFret > maxFretLimit {
		return voicing.Config{}, fmt.Errorf("--max-fret must be between 0 and %d", maxFretLimit)
	}
	if voicingMaxSpan > maxSpanLimit {
		return voicing.Config{}, fmt.Errorf("--max-span must be between 0 and %d", maxSpanLimit)
	}

	tuning, err := voicing.ParseTuning(tuningName)
	if err != nil {
		return voicing.Config{}, err
	}
	cfg := voicing.Config{
		Tuning:  tuning,
		MinFret: voicing.Fret(voicingMinFret),
		MaxFret: voicing.Fret(voicingMaxFret),
		MaxSpan: voicing.Fret(voicingMaxSpan),
	}
	if err := cfg.Validate(); err != nil {
		return voicing.Config{}, err
	}
	return cfg, nil
}

func tuningFrom(cmd *cobra.Command, fileCfg config.FileConfig) (voicing.Tuning, error) {
	applyStringConfig(cmd, "tuning", &tuningName, fileCfg.Voicing.Tuning)
	return voicing.ParseTuning(tuningName)
}

func writeChart(w io.Writer, v voicing.Voicing, span voicing.Fret, color bool) error {
	chart := diagram.NewChart(v, span, color)
	if err := chart.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyUint8Config(cmd *cobra.Command, name string, target, value *uint8) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# fretline configuration
# Uncomment a value to enable it. CLI flags override config values.

[voicing]
# tuning = %q      # Tuning: C, D or G
# min-fret = %d      # Lowest fret used for voicings
# max-fret = %d     # Highest fret used for voicings
# max-span = %d      # Widest fret stretch within a voicing

[midi]
# tempo = %.1f     # Playback tempo in beats per minute
# velocity = %d     # Note velocity (1-127)

[serve]
# addr = %q      # HTTP listen address
`,
		defaultTuning,
		defaultMinFret,
		defaultMaxFret,
		defaultMaxSpan,
		midifile.DefaultTempo,
		midifile.DefaultVelocity,
		defaultServeAddr,
	)
}

func shouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
