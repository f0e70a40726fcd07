// Package views renders store data for the command line.
package views

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/impa-jovem/impa/internal/account"
	"github.com/impa-jovem/impa/internal/assessment"
	"github.com/impa-jovem/impa/internal/content"
	"github.com/impa-jovem/impa/internal/dashboard"
	"github.com/impa-jovem/impa/internal/inbox"
	"github.com/impa-jovem/impa/internal/journal"
	"github.com/impa-jovem/impa/internal/progress"
	"github.com/impa-jovem/impa/internal/ui/components"
	"github.com/impa-jovem/impa/internal/ui/theme"
)

const dateFormat = "2006-01-02 15:04"

// TrackList renders every track with the user's progress.
func TrackList(tracks []content.Track, counts map[string]int, width int) string {
	cw := components.ContentWidth(width)
	var b strings.Builder
	for _, t := range tracks {
		n := counts[t.ID]
		body := theme.Subtitle.Render(fmt.Sprintf("%s · %s · %d steps", t.ID, t.Duration, t.StepsCount)) + "\n" +
			theme.Body.Render(t.Description) + "\n" +
			components.NewProgressBar("", progress.Percent(n, t.StepsCount), true, cw-4).View()
		b.WriteString(components.TitledCard(t.Title, body, cw))
		b.WriteString("\n")
	}
	return b.String()
}

// TrackDetail renders a track's steps with their state and saved answers.
func TrackDetail(t content.Track, completed int, responses map[int]string, width int) string {
	cw := components.ContentWidth(width)
	var b strings.Builder

	b.WriteString(theme.Title.Render(t.Title))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(t.Description))
	b.WriteString("\n\n")
	b.WriteString(theme.Label.Render("Mission: ") + theme.Body.Render(t.Mission))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("Progress", progress.Percent(completed, t.StepsCount), true, cw).View())
	b.WriteString("\n\n")

	for i, s := range t.Steps {
		state := progress.StateOf(i, completed)
		var marker, title string
		switch state {
		case progress.StepCompleted:
			marker = theme.Completed.Render("✓")
			title = theme.Completed.Render(s.Title)
		case progress.StepCurrent:
			marker = theme.Current.Render("▸")
			title = theme.Current.Render(s.Title)
		default:
			marker = theme.Locked.Render("·")
			title = theme.Locked.Render(s.Title)
		}
		fmt.Fprintf(&b, "%s %d. %s\n", marker, s.ID, title)
		if state != progress.StepLocked {
			b.WriteString(indent(theme.Body.Width(cw-4).Render(s.Content), 5))
			b.WriteString("\n")
		}
		if r := responses[s.ID]; r != "" {
			b.WriteString(indent(theme.Hint.Width(cw-4).Render("Your answer: "+r), 5))
			b.WriteString("\n")
		}
	}

	if completed >= t.StepsCount {
		b.WriteString("\n")
		b.WriteString(theme.Completed.Render("Track complete! Take a moment to reflect:"))
		b.WriteString("\n")
		for _, q := range t.ReflectionQuestions {
			b.WriteString("  - " + theme.Body.Render(q) + "\n")
		}
	}
	return b.String()
}

// PotentialMap renders a generated map. trackTitle may be empty when the
// suggestion has no matching track.
func PotentialMap(m *assessment.PotentialMap, trackTitle string, width int) string {
	cw := components.ContentWidth(width)
	var skills strings.Builder
	for i, s := range m.TopSkills {
		if i > 0 {
			skills.WriteString("\n")
		}
		fmt.Fprintf(&skills, "%s %s\n   %s", theme.Current.Render(fmt.Sprintf("%d.", i+1)), theme.Label.Render(s.Skill), theme.Body.Render(s.Description))
	}

	suggestion := content.SuggestedTrackLabel(m.SuggestedTrackID)
	if trackTitle != "" {
		suggestion = trackTitle + " (" + m.SuggestedTrackID + ")"
	}

	parts := []string{
		components.TitledCard("Your top skills", skills.String(), cw),
		components.TitledCard("Try this today", theme.Body.Render(m.PracticalApplication), cw),
		components.TitledCard("Suggested track", theme.Body.Render(suggestion), cw),
		theme.Hint.Width(cw).Render(m.Encouragement),
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Avatar renders the avatar as colored swatches with its style names.
func Avatar(a account.AvatarConfig) string {
	a = a.WithDefaults()
	swatch := func(hex string) string {
		return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ") + " " + theme.Subtitle.Render(hex)
	}
	lines := []string{
		theme.Label.Render("Skin        ") + swatch(a.SkinColor),
		theme.Label.Render("Hair        ") + swatch(a.HairColor) + theme.Body.Render("  "+string(a.HairStyle)),
		theme.Label.Render("Clothing    ") + swatch(a.ClothingColor),
		theme.Label.Render("Background  ") + swatch(a.BackgroundColor),
		theme.Label.Render("Accessory   ") + theme.Body.Render(string(a.Accessory)),
	}
	return strings.Join(lines, "\n")
}

// Profile renders the user card, avatar and progress summary.
func Profile(u account.User, sum progress.Summary, width int) string {
	cw := components.ContentWidth(width)

	about := []string{
		theme.Body.Render(u.Email) + "  " + components.Badge(string(u.Role), theme.Label),
	}
	var meta []string
	if u.Age > 0 {
		meta = append(meta, fmt.Sprintf("%d years", u.Age))
	}
	for _, v := range []string{u.Country, u.Education, u.Phone} {
		if v != "" {
			meta = append(meta, v)
		}
	}
	if len(meta) > 0 {
		about = append(about, theme.Subtitle.Render(strings.Join(meta, " · ")))
	}
	if u.Interests != "" {
		about = append(about, theme.Subtitle.Render("Interests: "+u.Interests))
	}

	stats := fmt.Sprintf("%s started   %s completed   %s missions",
		theme.Current.Render(fmt.Sprint(len(sum.Started))),
		theme.Completed.Render(fmt.Sprint(sum.CompletedTracks)),
		theme.Label.Render(fmt.Sprint(sum.Missions)))

	var tracks strings.Builder
	if len(sum.Started) == 0 {
		tracks.WriteString(theme.Hint.Render("No tracks started yet. Try `impa tracks list`."))
	}
	for i, tp := range sum.Started {
		if i > 0 {
			tracks.WriteString("\n")
		}
		tracks.WriteString(components.NewProgressBar(padRight(tp.Track.Title, 26), tp.Percent, true, cw-4).View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		components.TitledCard(u.Name, strings.Join(about, "\n"), cw),
		components.TitledCard("Avatar", Avatar(u.Avatar), cw),
		components.TitledCard("Progress", stats+"\n\n"+tracks.String(), cw),
	)
}

// Journal renders diary entries, newest first.
func Journal(entries []journal.Entry, width int) string {
	if len(entries) == 0 {
		return theme.Hint.Render("Your journal is empty.")
	}
	cw := components.ContentWidth(width)
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(diaryCard(e, content.TrackTitle(e.TrackID), cw))
		b.WriteString("\n")
	}
	return b.String()
}

func diaryCard(e journal.Entry, trackTitle string, cw int) string {
	head := theme.Label.Render(trackTitle) + "  " + theme.Subtitle.Render(e.Date.Local().Format(dateFormat))
	body := theme.Body.Render(e.Content)
	if e.ImageURL != "" {
		body += "\n" + theme.Hint.Render("image: "+e.ImageURL)
	}
	return components.Card(head+"\n"+body, cw)
}

// Inbox renders the mentor inbox.
func Inbox(questions []inbox.Question, width int) string {
	if len(questions) == 0 {
		return theme.Hint.Render("No questions yet.")
	}
	cw := components.ContentWidth(width)
	var b strings.Builder
	for _, q := range questions {
		status := components.Badge(string(q.Status), theme.Current)
		if q.Status == inbox.StatusAnswered {
			status = components.Badge(string(q.Status), theme.Completed)
		}
		head := fmt.Sprintf("%s %s %s", status, components.Badge(string(q.Type), theme.Label), theme.Title.Render(q.Topic))
		from := theme.Subtitle.Render(fmt.Sprintf("%s <%s> · %s · %s", q.UserName, q.UserEmail, q.Date.Local().Format(dateFormat), q.ID))
		b.WriteString(components.Card(head+"\n"+from+"\n"+theme.Body.Render(q.Content), cw))
		b.WriteString("\n")
	}
	return b.String()
}

// Students renders the mentor's student list.
func Students(rows []dashboard.StudentRow) string {
	if len(rows) == 0 {
		return theme.Hint.Render("No students registered yet.")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-36s  %-20s  %-28s  %7s  %9s  %8s\n", "ID", "NAME", "EMAIL", "STARTED", "COMPLETED", "MISSIONS")
	b.WriteString(strings.Repeat("─", 118))
	b.WriteString("\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "%-36s  %-20s  %-28s  %7d  %9d  %8d\n",
			r.User.ID, truncate(r.User.Name, 20), truncate(r.User.Email, 28),
			len(r.Summary.Started), r.Summary.CompletedTracks, r.Summary.Missions)
	}
	return b.String()
}

// StudentDetail renders everything a mentor sees about one student.
func StudentDetail(d *dashboard.StudentDetail, width int) string {
	cw := components.ContentWidth(width)
	parts := []string{Profile(d.User, d.Summary, width)}

	if d.Map != nil {
		parts = append(parts, theme.Title.Render("Potential map"), PotentialMap(d.Map, d.SuggestedTrack, width))
	} else {
		parts = append(parts, theme.Hint.Render("Quiz not taken yet."))
	}

	parts = append(parts, theme.Title.Render("Journal"))
	if len(d.Diary) == 0 {
		parts = append(parts, theme.Hint.Render("No journal entries."))
	}
	for _, item := range d.Diary {
		parts = append(parts, diaryCard(item.Entry, item.TrackTitle, cw))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, n int) string {
	if w := lipgloss.Width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
