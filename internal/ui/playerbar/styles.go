package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/waves-lite/internal/icons"
	"github.com/llehouerou/waves-lite/internal/playback"
	"github.com/llehouerou/waves-lite/internal/ui/styles"
)

func barStyle() lipgloss.Style {
	return styles.PanelStyle(false).Padding(0, horizontalPadding)
}

func titleStyle() lipgloss.Style { return styles.T().S().Title }

func artistStyle() lipgloss.Style { return styles.T().S().Muted }

func infoStyle() lipgloss.Style { return styles.T().S().Base }

func metaStyle() lipgloss.Style { return styles.T().S().Subtle }

func timeStyle() lipgloss.Style { return styles.T().S().Muted }

func progressEmptyStyle() lipgloss.Style { return styles.T().S().Subtle }

func volumeFilledStyle() lipgloss.Style { return styles.T().S().Active }

func controlPiece(target Target, icon string) piece {
	return piece{target: target, plain: icon, styled: styles.T().S().Title.Render(icon)}
}

func iconPrevious() string { return icons.Previous() }

func iconNext() string { return icons.Next() }

func iconPlayPause(playing bool) string { return icons.PlayPause(playing) }

func shufflePiece(enabled bool) piece {
	return togglePiece(TargetShuffle, icons.Shuffle(), enabled)
}

func repeatPiece(mode playback.RepeatMode) piece {
	switch mode {
	case playback.RepeatOne:
		return togglePiece(TargetRepeat, icons.RepeatOne(), true)
	case playback.RepeatAll:
		return togglePiece(TargetRepeat, icons.RepeatAll(), true)
	default:
		return togglePiece(TargetRepeat, icons.RepeatAll(), false)
	}
}

func togglePiece(target Target, icon string, enabled bool) piece {
	style := styles.T().S().Subtle
	if enabled {
		style = styles.T().S().Active
	}
	return piece{target: target, plain: icon, styled: style.Render(icon)}
}
