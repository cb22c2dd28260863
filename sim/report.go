package sim

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/milk9111/cartpole/telemetry"
)

var (
	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(20)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	goodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	badStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// RenderSummary formats run statistics as a bordered panel.
func RenderSummary(sum telemetry.Summary) string {
	rows := []struct {
		label string
		value string
	}{
		{"ticks", fmt.Sprintf("%d", sum.Ticks)},
		{"duration", fmt.Sprintf("%.2f s", sum.Duration)},
		{"angle mean", fmt.Sprintf("%.2f°", degrees(sum.AngleMean))},
		{"angle stddev", fmt.Sprintf("%.2f°", degrees(sum.AngleStdDev))},
		{"angle max", fmt.Sprintf("%.2f°", degrees(sum.AngleMaxAbs))},
		{"carriage travel", fmt.Sprintf("%.1f px", sum.CarriageTravel)},
		{"mean |torque|", fmt.Sprintf("%.1f", sum.MeanAbsTorque)},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("cartpole run"))
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(labelStyle.Render(r.label))
		b.WriteString(valueStyle.Render(r.value))
		b.WriteString("\n")
	}

	fractionStyle, finalStyle := uprightStyles(sum)
	b.WriteString(labelStyle.Render("upright"))
	b.WriteString(fractionStyle.Render(fmt.Sprintf("%.0f%%", sum.UprightFraction*100)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("final tilt"))
	b.WriteString(finalStyle.Render(fmt.Sprintf("%.2f°", degrees(sum.FinalPendulumTilt))))

	return panelStyle.Render(b.String())
}

// PlotAngles draws the pendulum angle, in degrees, over the run.
func PlotAngles(samples []telemetry.Sample, width, height int) string {
	if len(samples) == 0 {
		return ""
	}
	angles := telemetry.Angles(samples)
	for i := range angles {
		angles[i] = degrees(angles[i])
	}
	return asciigraph.Plot(angles,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("pendulum angle (deg)"),
	)
}

// uprightStyles colours the upright fraction by itself and the final tilt
// by the final state.
func uprightStyles(sum telemetry.Summary) (fraction, final lipgloss.Style) {
	return statusStyle(sum.UprightFraction >= 0.5),
		statusStyle(math.Abs(sum.FinalPendulumTilt) <= telemetry.UprightLimit)
}

func statusStyle(ok bool) lipgloss.Style {
	if ok {
		return goodStyle
	}
	return badStyle
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
