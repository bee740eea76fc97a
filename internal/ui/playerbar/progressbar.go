package playerbar

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/llehouerou/waves-lite/internal/ui/styles"
)

const (
	filledCell = "━"
	emptyCell  = "─"
)

// FormatTime renders a number of seconds as m:ss. Minutes are not wrapped
// into hours. NaN, infinite and negative values render as "0:00".
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "0:00"
	}
	total := int64(math.Floor(seconds))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// FormatDuration is FormatTime for a time.Duration.
func FormatDuration(d time.Duration) string {
	return FormatTime(d.Seconds())
}

// progressRatio returns position/duration in [0,1], 0 when the duration is unknown.
func progressRatio(position, duration time.Duration) float64 {
	if duration <= 0 {
		return 0
	}
	return min(max(float64(position)/float64(duration), 0), 1)
}

func progressPiece(position, duration time.Duration, width int) piece {
	filled := int(math.Round(float64(width) * progressRatio(position, duration)))
	filled = min(filled, width)

	plain := strings.Repeat(filledCell, filled) + strings.Repeat(emptyCell, width-filled)
	styled := styles.ApplyGradient(strings.Repeat(filledCell, filled), styles.T().Primary, styles.T().Secondary) +
		progressEmptyStyle().Render(strings.Repeat(emptyCell, width-filled))

	return piece{target: TargetProgress, plain: plain, styled: styled}
}
