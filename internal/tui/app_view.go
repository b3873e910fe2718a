// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-art-vault/internal/layout"
	"github.com/MKhiriev/go-art-vault/internal/share"
	"github.com/MKhiriev/go-art-vault/internal/utils"
	"github.com/MKhiriev/go-art-vault/models"
	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	if m.errOverlay != nil {
		return m.place(m.errOverlay.View())
	}
	if m.showAbout {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}
	if m.workflow == nil {
		return appStyle.Render(m.spinner.View() + " Connecting wallet...")
	}

	var b strings.Builder
	b.WriteString(m.renderNavBar())
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.workflow.Phase() == models.PhaseClosed {
		b.WriteString(m.renderGallery())
	} else {
		b.WriteString(m.renderModal())
	}

	if m.inputMode != inputNone {
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
	}

	b.WriteString("\n\n")
	if m.status != "" {
		b.WriteString(errorStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.hotKeys()))

	return appStyle.Render(b.String())
}

func (m appModel) place(content string) string {
	if m.width == 0 || m.height == 0 {
		return appStyle.Render(content)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m appModel) renderNavBar() string {
	p := paletteFor(m.workflow.Theme())
	brand := titleStyle.Foreground(p.accent).Render("Art Vault")

	action := m.workflow.PrimaryAction()
	actionText := "[enter] " + action.Title
	if action.Disabled {
		actionText = disabledStyle.Render(actionText)
	}

	return brand + "  " + accountLine(m.workflow.Account()) + "  " + actionText
}

func (m appModel) renderHeader() string {
	session := m.workflow.Session()

	if !session.Secured {
		if len(session.Items) == 0 {
			return "Press a to add files"
		}
		return "Staged files: " + strconv.Itoa(len(session.Items))
	}

	lines := []string{"Vault " + fitText(session.Root.String(), m.galleryWidth()-6)}
	if session.Owner != "" {
		lines = append(lines, "Owner: "+m.displayName(session.Owner))
	}
	if m.workflow.IsOwner() && len(session.Whitelist) > 0 {
		lines = append(lines, viewersLine(len(session.Whitelist)))
	}
	return strings.Join(lines, "\n")
}

func (m appModel) displayName(address string) string {
	name, ok := m.names[address]
	if !ok || utils.SameAddress(name, address) {
		return utils.FormatAddress(address)
	}
	return name + " (" + utils.FormatAddress(address) + ")"
}

// ── Gallery ──────────────────────────────────────────────────────────────────

func (m appModel) renderGallery() string {
	if len(m.grid.Placements) == 0 {
		if m.workflow.Session().Secured {
			return helpStyle.Render("Loading vault...")
		}
		return helpStyle.Render("No files yet")
	}
	return m.renderGrid(m.grid)
}

func (m appModel) renderGrid(grid layout.Grid[models.VaultItem]) string {
	p := paletteFor(m.workflow.Theme())
	preview := m.workflow.Session().Preview

	columns := grid.Columns()
	rendered := make([]string, 0, len(columns))
	for _, column := range columns {
		tiles := make([]string, 0, len(column))
		for _, placement := range column {
			tiles = append(tiles, m.renderTile(placement, preview, p))
		}
		rendered = append(rendered, lipgloss.JoinVertical(lipgloss.Left, tiles...))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m appModel) renderTile(placement layout.Placement[models.VaultItem], preview models.VaultItem, p palette) string {
	// border and padding take four cells
	inner := int(placement.Width) - 4
	if inner < 4 {
		inner = 4
	}

	title := fitText(placement.Key, inner)
	caption := ""
	switch {
	case models.IsPlaceholder(placement.Item):
		title = "(no cover)"
	case preview != nil && preview.Key() == placement.Key:
		caption = "cover"
	}
	if placement.Index == m.cursor {
		title = selectedStyle.Render(title)
	}

	style := tileStyle(p, inner)
	if m.entering[placement.Key] {
		style = style.BorderForeground(p.entering)
	}
	return style.Render(title + "\n" + helpStyle.Render(caption))
}

// ── Modal ────────────────────────────────────────────────────────────────────

func (m appModel) renderModal() string {
	session := m.workflow.Session()
	labels := m.workflow.Labels()

	var body string
	switch session.Phase {
	case models.PhaseSelectPreview:
		body = "Pick a cover for the vault\n\n" + m.renderGrid(m.grid)
	case models.PhaseConfirmPreview:
		body = "Cover: " + coverName(session.Preview) + "\n" + helpStyle.Render("e: edit cover")
	case models.PhaseSubmit:
		body = "Secure " + strconv.Itoa(layout.CountItems(session.Items)) + " file(s) with cover " +
			coverName(session.Preview) + "?\nSecured vaults cannot be changed."
	case models.PhaseProcessing:
		body = "Securing vault..."
	case models.PhaseError:
		body = errorStyle.Render(session.Error)
	case models.PhaseSuccess:
		body = "Vault secured\n" + m.shareLine(session.Root)
	case models.PhaseShare:
		body = "Grant view access to\n\n" + m.input.View() + "\n" + helpStyle.Render("ctrl+v: paste")
	case models.PhaseShared:
		body = viewersLine(len(session.Whitelist)) + "\n" + m.shareLine(session.Root)
	case models.PhaseManageAccess:
		body = m.renderWhitelist(session.Whitelist)
	}

	var controls string
	switch {
	case labels.Loading:
		controls = m.spinner.View()
	case labels.OnlyDismiss:
		controls = "[enter/esc] " + labels.Dismiss
	default:
		primary := "[enter] " + labels.Primary
		if m.workflow.PrimaryDisabled() {
			primary = disabledStyle.Render(primary)
		}
		controls = primary + "  [esc] " + labels.Dismiss
	}

	content := body + "\n\n" + controls
	if labels.Centered {
		content = lipgloss.NewStyle().Align(lipgloss.Center).Render(content)
	}

	box := overlayBoxStyle.BorderForeground(paletteFor(session.Theme).accent).Render(content)
	if labels.Centered {
		return lipgloss.PlaceHorizontal(m.galleryWidth(), lipgloss.Center, box)
	}
	return box
}

func (m appModel) renderWhitelist(whitelist []string) string {
	var b strings.Builder
	b.WriteString("Viewers\n\n")
	for i, a := range whitelist {
		line := m.displayName(a)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("d: revoke access"))
	return b.String()
}

func (m appModel) shareLine(root models.ContentID) string {
	link, err := share.Build(m.appCfg.ShareHost, root)
	if err != nil {
		return ""
	}
	return link.URL + "\n" + helpStyle.Render("c: copy link")
}

func coverName(item models.VaultItem) string {
	if item == nil || models.IsPlaceholder(item) {
		return "none"
	}
	return item.Key()
}

func (m appModel) hotKeys() string {
	if m.inputMode != inputNone {
		return "enter: confirm • ctrl+v: paste • esc: cancel"
	}

	session := m.workflow.Session()
	if session.Phase != models.PhaseClosed {
		return "ctrl+c: quit"
	}

	parts := []string{"arrows: move"}
	if !session.Secured {
		parts = append(parts, "a: add", "d: remove")
	} else {
		parts = append(parts, "c: copy link", "y: copy item link")
		if m.workflow.IsOwner() && len(session.Whitelist) > 0 {
			parts = append(parts, "m: manage access")
		}
	}
	parts = append(parts, "o: open vault", "v: about", "q: quit")
	return strings.Join(parts, " • ")
}
