package gui

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/lexicarte/internal/export"
)

// onShowSettings opens the settings sheet: generation credential and
// provider, plus the backup and export actions.
func (a *Application) onShowSettings() {
	keyEntry := widget.NewPasswordEntry()
	keyEntry.SetPlaceHolder("API key...")
	if key, err := a.store.Credential(); err == nil {
		keyEntry.SetText(key)
	}

	providerSelect := widget.NewSelect([]string{"openai", "gemini"}, nil)
	providerSelect.SetSelected(a.config.Provider)

	backupButton := widget.NewButton("Backup collection...", a.onBackup)
	exportButton := widget.NewButton("Export to Anki CSV...", a.onExportCSV)

	items := []*widget.FormItem{
		widget.NewFormItem("Provider", providerSelect),
		widget.NewFormItem("API key", keyEntry),
		widget.NewFormItem("", backupButton),
		widget.NewFormItem("", exportButton),
	}

	d := dialog.NewForm("Settings", "Save", "Cancel", items, func(save bool) {
		if !save {
			return
		}
		if providerSelect.Selected != "" {
			a.config.Provider = providerSelect.Selected
		}
		if err := a.store.SetCredential(keyEntry.Text); err != nil {
			dialog.ShowError(fmt.Errorf("failed to store API key: %w", err), a.window)
			return
		}
		a.rebuildGenerator()
		a.statusLabel.SetText("Settings saved")
	}, a.window)
	d.Resize(fyne.NewSize(440, 280))
	d.Show()
}

// onBackup writes a timestamped JSON snapshot into a chosen folder.
func (a *Application) onBackup() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		path, err := a.store.Backup(uri.Path())
		if err != nil {
			dialog.ShowError(fmt.Errorf("backup failed: %w", err), a.window)
			return
		}
		a.statusLabel.SetText(fmt.Sprintf("Backup written to %s", filepath.Base(path)))
	}, a.window)
}

// onExportCSV writes the whole collection as an Anki-importable CSV.
func (a *Application) onExportCSV() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		path := filepath.Join(uri.Path(), "lexicarte-anki.csv")
		if err := export.WriteCSV(a.state.All(), &export.Options{OutputPath: path}); err != nil {
			dialog.ShowError(fmt.Errorf("export failed: %w", err), a.window)
			return
		}
		a.statusLabel.SetText(fmt.Sprintf("Exported %d cards to %s", a.state.Count(), filepath.Base(path)))
	}, a.window)
}
