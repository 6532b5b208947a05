package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerArt = `
┌─┐┌─┐┬─┐┌┬┐┌─┐┬─┐┌─┐┌─┐┬ ┬
│  ├─┤├┬┘ │││ ┬├┬┘├─┤├─┘├─┤
└─┘┴ ┴┴└──┴┘└─┘┴└─┴ ┴┴  ┴ ┴`

const bannerSubtitle = "Flashcards with a knowledge graph"

// RenderBanner returns the styled banner with a centered subtitle and rule.
func RenderBanner() string {
	lines := strings.Split(strings.Trim(bannerArt, "\n"), "\n")
	width := lipgloss.Width(bannerSubtitle)
	for _, line := range lines {
		if w := lipgloss.Width(line); w > width {
			width = w
		}
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(BannerStyle.Render(line))
		b.WriteString("\n")
	}
	centered := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	b.WriteString("\n")
	b.WriteString(centered.Inherit(MutedStyle).Render(bannerSubtitle))
	b.WriteString("\n")
	b.WriteString(centered.Inherit(MutedStyle).Render(strings.Repeat("─", lipgloss.Width(bannerSubtitle))))
	return b.String()
}
