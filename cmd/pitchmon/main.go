// Command pitchmon is a terminal tuner that drives the pitch-detection
// pipeline with a synthetic tone generator, since real audio I/O is out
// of scope for this module. It exists to exercise the full pipeline
// (stream framing, detection, stabilization, note conversion) end to end
// from a single entry point.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ashgrove-audio/pitchcore/internal/cli"
	"github.com/ashgrove-audio/pitchcore/internal/synth"
	"github.com/ashgrove-audio/pitchcore/internal/ui"
	"github.com/ashgrove-audio/pitchcore/pkg/logging"
	"github.com/ashgrove-audio/pitchcore/pkg/note"
	"github.com/ashgrove-audio/pitchcore/pkg/pitch"
	"github.com/ashgrove-audio/pitchcore/pkg/preprocess"
	"github.com/ashgrove-audio/pitchcore/pkg/spectral"
	"github.com/ashgrove-audio/pitchcore/pkg/stream"
)

// guitarBandCenter and guitarBandQ shape a bandpass spanning roughly the
// 80-1200 Hz guitar fundamental range (center is the geometric mean of
// the band edges; Q = center/bandwidth).
const (
	guitarBandCenter = 310.0
	guitarBandQ      = 0.28
)

var version = "0.0.1"

// CLI defines the pitchmon command-line interface.
type CLI struct {
	Version bool `short:"v" help:"Show version information"`

	Frequency    float64 `default:"220" help:"Fundamental frequency of the synthetic tone, Hz"`
	Amplitude    float64 `default:"0.8" help:"Peak amplitude of the synthetic tone's fundamental, [0,1]"`
	Harmonics    string  `default:"0.5,0.25" help:"Comma-separated relative amplitudes of the 2nd, 3rd, ... partial"`
	VibratoRate  float64 `default:"0" help:"Vibrato rate, Hz (0 disables vibrato)"`
	VibratoDepth float64 `default:"0" help:"Vibrato depth, Hz peak deviation"`
	Noise        float64 `default:"0.01" help:"Noise floor peak amplitude"`

	SampleRate float64       `default:"48000" help:"Sample rate, Hz"`
	Window     int           `default:"2048" help:"Analysis window size, samples"`
	Hop        int           `default:"512" help:"Hop size between analysis frames, samples"`
	Detector   string        `default:"hybrid" enum:"yin,mpm,hybrid" help:"Pitch detection algorithm"`
	Stabilizer string        `default:"hybrid" enum:"ema,median,hybrid" help:"Temporal stabilization strategy"`
	A4         float64       `default:"440" help:"Reference frequency for A4, Hz"`
	Duration   time.Duration `default:"30s" help:"How long to run before exiting"`
	FrameRate  time.Duration `default:"20ms" help:"Wall-clock delay between analysis frames, simulating real-time input"`
}

func main() {
	cliArgs := &CLI{}
	kong.Parse(cliArgs,
		kong.Name("pitchmon"),
		kong.Description("Synthetic-tone terminal tuner for the pitchcore detection pipeline"),
		kong.UsageOnError(),
	)

	if cliArgs.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	harmonics, err := parseHarmonics(cliArgs.Harmonics)
	if err != nil {
		logging.Error(err, "invalid --harmonics value")
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	detector, err := buildDetector(cliArgs.Detector)
	if err != nil {
		logging.Error(err, "failed to construct detector")
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	stabilizer, err := buildStabilizer(cliArgs.Stabilizer)
	if err != nil {
		logging.Error(err, "failed to construct stabilizer")
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	sampleRate := float32(cliArgs.SampleRate)
	detector.Prepare(cliArgs.Window)

	logging.Info("starting pitchmon", logging.Fields{
		"detector":   cliArgs.Detector,
		"stabilizer": cliArgs.Stabilizer,
		"sampleRate": cliArgs.SampleRate,
		"window":     cliArgs.Window,
		"hop":        cliArgs.Hop,
	})

	gen := synth.NewGenerator(synth.Config{
		SampleRate:   sampleRate,
		Frequency:    float32(cliArgs.Frequency),
		Amplitude:    float32(cliArgs.Amplitude),
		Harmonics:    harmonics,
		VibratoRate:  float32(cliArgs.VibratoRate),
		VibratoDepth: float32(cliArgs.VibratoDepth),
		NoiseLevel:   float32(cliArgs.Noise),
	})

	sw := stream.NewSlidingWindow(cliArgs.Window, cliArgs.Hop)
	analyzer := spectral.NewAnalyzer(cliArgs.Window, sampleRate)
	dcBlock := preprocess.NewDCBlock()
	bandpass := preprocess.NewBandpass(sampleRate, guitarBandCenter, guitarBandQ)
	pitchChan := make(chan tea.Msg, 64)

	source := fmt.Sprintf("synthetic %.1f Hz tone", cliArgs.Frequency)
	model := ui.NewModel(source, pitchChan)
	p := tea.NewProgram(model, tea.WithAltScreen())

	go runPipeline(p, gen, sw, dcBlock, bandpass, detector, stabilizer, analyzer, sampleRate, cliArgs, pitchChan)

	if _, err := p.Run(); err != nil {
		cli.PrintError(fmt.Sprintf("UI error: %v", err))
		os.Exit(1)
	}
}

func runPipeline(
	p *tea.Program,
	gen *synth.Generator,
	sw *stream.SlidingWindow,
	dcBlock *preprocess.DCBlock,
	bandpass *preprocess.Bandpass,
	detector pitch.Detector,
	stabilizer pitch.Stabilizer,
	analyzer *spectral.Analyzer,
	sampleRate float32,
	cliArgs *CLI,
	pitchChan chan tea.Msg,
) {
	deadline := time.Now().Add(cliArgs.Duration)
	hybrid, usesHybrid := detector.(*pitch.Hybrid)
	prevYIN, prevMPM := 0, 0

	chunk := make([]float32, cliArgs.Hop)
	ticker := time.NewTicker(cliArgs.FrameRate)
	defer ticker.Stop()

	for range ticker.C {
		if time.Now().After(deadline) {
			p.Send(ui.QuitMsg{})
			return
		}

		gen.Fill(chunk)

		// Condition the raw stream once, in sample order, before it ever
		// reaches the window: peak-normalize (the synth sums a fundamental,
		// several harmonics, and noise, which can clip past +-1.0), then
		// DC-block, then bandpass-limit to the guitar fundamental range.
		// Filtering happens here rather than on each emitted (possibly
		// overlapping) frame so every sample passes through each filter's
		// state exactly once.
		preprocess.PeakNormalize(chunk)
		dcBlock.ProcessBuffer(chunk)
		bandpass.ProcessBuffer(chunk)

		sw.AddSamples(chunk, func(frame []float32) {
			result, ok := detector.Detect(frame, sampleRate)
			if ok {
				stabilizer.Update(result)
			}

			stabilized := stabilizer.GetStabilized()

			msg := ui.PitchMsg{
				Raw:        result.Frequency,
				Stabilized: stabilized.Frequency,
				Confidence: stabilized.Confidence,
			}

			if stabilized.Frequency > 0 {
				info := note.FrequencyToNote(stabilized.Frequency, float32(cliArgs.A4))
				msg.NoteName = info.Name
				msg.Octave = info.Octave
				msg.Cents = info.Cents
			}

			if spectrum, err := analyzer.Compute(frame); err == nil {
				msg.SpectralCentroid = spectrum.SpectralCentroid()
			}

			if usesHybrid {
				msg.UsingYIN = hybrid.YINUsed() > prevYIN
				msg.UsingMPM = hybrid.MPMUsed() > prevMPM
				prevYIN, prevMPM = hybrid.YINUsed(), hybrid.MPMUsed()
			} else {
				msg.UsingYIN = cliArgs.Detector == "yin"
				msg.UsingMPM = cliArgs.Detector == "mpm"
			}

			p.Send(msg)
		})
	}
}

func buildDetector(name string) (pitch.Detector, error) {
	switch name {
	case "yin":
		return pitch.NewYIN(pitch.DefaultYINConfig()), nil
	case "mpm":
		return pitch.NewMPM(pitch.DefaultMPMConfig()), nil
	case "hybrid":
		return pitch.NewHybrid(pitch.DefaultHybridConfig()), nil
	default:
		return nil, fmt.Errorf("unknown detector %q", name)
	}
}

func buildStabilizer(name string) (pitch.Stabilizer, error) {
	switch name {
	case "ema":
		return pitch.NewEMA(pitch.DefaultEMAConfig()), nil
	case "median":
		return pitch.NewMedian(pitch.DefaultMedianConfig()), nil
	case "hybrid":
		return pitch.NewHybridStab(pitch.DefaultHybridStabConfig()), nil
	default:
		return nil, fmt.Errorf("unknown stabilizer %q", name)
	}
}

func parseHarmonics(csv string) ([]float32, error) {
	csv = strings.TrimSpace(csv)
	if csv == "" {
		return nil, nil
	}

	parts := strings.Split(csv, ",")
	out := make([]float32, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return nil, fmt.Errorf("invalid harmonics value %q: %w", part, err)
		}
		out = append(out, float32(v))
	}
	return out, nil
}

func init() {
	// Silence the default global logger's info-level chatter; while
	// running, pitchmon talks to the user through the Bubbletea view.
	// Warnings and errors still reach stderr.
	logging.SetLevel(logging.WarnLevel)
}
