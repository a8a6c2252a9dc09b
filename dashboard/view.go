package dashboard

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"tdash/layout"
	"tdash/sysinfo"
)

// Row is one label/value line of a panel.
type Row struct {
	Label string
	Value string
}

// Panel is a titled, bordered table of rows.
type Panel struct {
	Title      string
	Accent     lipgloss.Color // border and title
	LabelColor lipgloss.Color
	ValueColor lipgloss.Color
	Rows       []Row
}

// View is the composed dashboard: a header line, the body panels arranged by
// Plan, and a footer line.
type View struct {
	Header string
	Plan   layout.Plan
	Panels []Panel
	Footer string
}

// HeaderTimeFormat is the timestamp layout shown in the header.
const HeaderTimeFormat = "2006-01-02 15:04"

// BuildView arranges a snapshot into the dashboard's fixed display order:
// battery, memory, storage and public IP, then OS, shell, runtime and home,
// then the weather footer.
func BuildView(snap *sysinfo.Snapshot, plan layout.Plan, title string, now time.Time) View {
	return View{
		Header: fmt.Sprintf("%s • %s", title, now.Format(HeaderTimeFormat)),
		Plan:   plan,
		Panels: []Panel{
			{
				Title:      "System Status",
				Accent:     ColorGreen,
				LabelColor: ColorCyan,
				ValueColor: ColorGreen,
				Rows: []Row{
					{Label: "Battery", Value: snap.System.Battery.String()},
					{Label: "Memory", Value: snap.System.Memory.String()},
					{Label: "Storage", Value: snap.System.Disk.String()},
					{Label: "Public IP", Value: snap.System.PublicIP.String()},
				},
			},
			{
				Title:      "Environment",
				Accent:     ColorYellow,
				LabelColor: ColorYellow,
				ValueColor: ColorWhite,
				Rows: []Row{
					{Label: "OS", Value: snap.Environment.OSName},
					{Label: "Shell", Value: snap.Environment.ShellPath},
					{Label: "Go", Value: snap.Environment.RuntimeVersion},
					{Label: "Home", Value: snap.Environment.HomeDir},
				},
			},
		},
		Footer: snap.Weather.String(),
	}
}
