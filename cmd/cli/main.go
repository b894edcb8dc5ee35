package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/store-tools/report-atlas/pkg/models/api"
	"github.com/store-tools/report-atlas/pkg/render"
	"github.com/store-tools/report-atlas/pkg/services/report"
)

var (
	reportType string
	inPath     string
	outPath    string
	fontDir    string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "render",
		Short: "Render a report payload file to a PDF document",
		RunE:  runRender,
	}

	rootCmd.Flags().StringVarP(&reportType, "type", "t", "",
		"Report type: kpi, orders, menus, time-day or material")
	rootCmd.Flags().StringVarP(&inPath, "in", "i", "", "Path to the payload JSON file")
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "report.pdf", "Path of the PDF to write")
	rootCmd.Flags().StringVar(&fontDir, "font-dir", "", "Directory holding the NanumGothic font pair (optional)")
	_ = rootCmd.MarkFlagRequired("type")
	_ = rootCmd.MarkFlagRequired("in")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runRender(_ *cobra.Command, _ []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	fonts, err := render.ResolveFonts(fontDir)
	if err != nil {
		logger.Warn().Err(err).Msg("continuing with the built-in fallback typeface")
		fonts = render.FontPair{}
	}
	builders := report.NewBuilders(render.NewStyles(fonts))

	raw, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read payload file: %w", err)
	}

	pdf, err := renderPayload(builders, strings.ToLower(reportType), raw)
	if err != nil {
		return err
	}
	if len(pdf) == 0 {
		return fmt.Errorf("empty %s PDF generated", reportType)
	}

	if err := os.WriteFile(outPath, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	logger.Info().Str("out", outPath).Int("bytes", len(pdf)).Msg("report rendered")
	return nil
}

func renderPayload(builders *report.Builders, kind string, raw []byte) ([]byte, error) {
	switch kind {
	case "kpi":
		var p api.KpiPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("failed to parse payload: %w", err)
		}
		return builders.RenderKPI(p)
	case "orders":
		var p api.OrdersPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("failed to parse payload: %w", err)
		}
		return builders.RenderOrders(p)
	case "menus", "menu":
		var p api.MenuPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("failed to parse payload: %w", err)
		}
		return builders.RenderMenu(p)
	case "time-day", "timeday":
		var p api.TimeDayPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("failed to parse payload: %w", err)
		}
		return builders.RenderTimeDay(p)
	case "material":
		var p api.MaterialPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("failed to parse payload: %w", err)
		}
		return builders.RenderMaterial(p)
	default:
		return nil, fmt.Errorf("unknown report type %q", kind)
	}
}
