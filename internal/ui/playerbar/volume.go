package playerbar

import (
	"fmt"
	"math"
	"strings"

	"github.com/llehouerou/waves-lite/internal/icons"
)

// volumePieces renders the speaker icon, the clickable slider and the
// percentage.
func volumePieces(level float64) []piece {
	filled := int(math.Round(level * sliderWidth))
	filled = min(max(filled, 0), sliderWidth)

	plain := strings.Repeat("█", filled) + strings.Repeat("░", sliderWidth-filled)
	styled := volumeFilledStyle().Render(strings.Repeat("█", filled)) +
		progressEmptyStyle().Render(strings.Repeat("░", sliderWidth-filled))

	pct := fmt.Sprintf(" %3d%%", int(math.Round(level*100)))
	return []piece{
		text(icons.Volume(level) + " "),
		{target: TargetVolume, plain: plain, styled: styled},
		{plain: pct, styled: timeStyle().Render(pct)},
	}
}
