// Package wizard collects search preferences interactively. It reads from
// an injected reader and writes to an injected writer so tests can drive
// it with scripted input.
package wizard

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"internhunt/internal/domain"
)

const banner = "============================================================"

// Wizard prompts for preferences on w, reading answers from r.
type Wizard struct {
	in  *bufio.Scanner
	out io.Writer
	log *zap.Logger
}

func New(r io.Reader, w io.Writer, log *zap.Logger) *Wizard {
	if log == nil {
		log = zap.NewNop()
	}
	return &Wizard{in: bufio.NewScanner(r), out: w, log: log}
}

// Run walks the user through the search questions and returns the collected
// preferences. ResumeSkills come from the resume step, not the wizard, so
// the caller fills them in afterwards. Returns an error only when input
// runs out mid-wizard.
func (wz *Wizard) Run() (domain.Preferences, error) {
	fmt.Fprintf(wz.out, "\n%s\nInternHunt - Preference Wizard\n%s\n\n", banner, banner)
	fmt.Fprintln(wz.out, "Let's customize your internship search!")
	fmt.Fprintln(wz.out)

	wanted, err := wz.promptKeywords("Wanted keywords (comma-separated, e.g. 'python, machine learning'): ", false)
	if err != nil {
		return domain.Preferences{}, err
	}
	reject, err := wz.promptKeywords("Reject keywords (comma-separated, empty for none): ", true)
	if err != nil {
		return domain.Preferences{}, err
	}
	remote, err := wz.promptRemote()
	if err != nil {
		return domain.Preferences{}, err
	}
	minStipend, err := wz.promptInt("Minimum monthly stipend in rupees (default 0): ", 0, 0)
	if err != nil {
		return domain.Preferences{}, err
	}
	maxAge, err := wz.promptInt("Maximum post age in days (default 30, 0 for any): ", 30, 0)
	if err != nil {
		return domain.Preferences{}, err
	}
	maxResults, err := wz.promptInt("Maximum number of results (default 50): ", 50, 1)
	if err != nil {
		return domain.Preferences{}, err
	}
	locations, err := wz.promptKeywords("Preferred locations (comma-separated, empty for all): ", true)
	if err != nil {
		return domain.Preferences{}, err
	}

	prefs := domain.Preferences{
		WantedKeywords:     wanted,
		RejectKeywords:     reject,
		Remote:             remote,
		MinStipend:         minStipend,
		MaxPostAgeDays:     maxAge,
		MaxResults:         maxResults,
		PreferredLocations: locations,
	}

	wz.log.Info("preferences collected",
		zap.Int("wanted_keywords", len(wanted)),
		zap.Int("reject_keywords", len(reject)),
		zap.String("remote", string(remote)),
		zap.Int("min_stipend", minStipend))

	fmt.Fprintf(wz.out, "\n%s\nPreferences saved! Starting internship search...\n%s\n\n", banner, banner)
	return prefs, nil
}

func (wz *Wizard) readLine(prompt string) (string, error) {
	fmt.Fprint(wz.out, prompt)
	if !wz.in.Scan() {
		if err := wz.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(wz.in.Text()), nil
}

func (wz *Wizard) promptKeywords(prompt string, allowEmpty bool) ([]string, error) {
	for {
		line, err := wz.readLine(prompt)
		if err != nil {
			return nil, err
		}
		kws := splitKeywords(line)
		if len(kws) == 0 && !allowEmpty {
			fmt.Fprintln(wz.out, "Error: enter at least one keyword.")
			continue
		}
		return kws, nil
	}
}

func (wz *Wizard) promptRemote() (domain.RemotePreference, error) {
	for {
		line, err := wz.readLine("Remote work preference (yes/no/any, default any): ")
		if err != nil {
			return "", err
		}
		switch strings.ToLower(line) {
		case "", "any":
			return domain.RemoteAny, nil
		case "yes":
			return domain.RemoteYes, nil
		case "no":
			return domain.RemoteNo, nil
		}
		fmt.Fprintln(wz.out, "Error: enter 'yes', 'no' or 'any'.")
	}
}

func (wz *Wizard) promptInt(prompt string, def, min int) (int, error) {
	for {
		line, err := wz.readLine(prompt)
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(wz.out, "Error: enter a valid number.")
			continue
		}
		if v < min {
			fmt.Fprintf(wz.out, "Error: enter a number >= %d.\n", min)
			continue
		}
		return v, nil
	}
}

// splitKeywords parses a comma-separated line into lowercase trimmed
// keywords, dropping empties.
func splitKeywords(line string) []string {
	if line == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(line, ",") {
		kw := strings.ToLower(strings.TrimSpace(part))
		if kw != "" {
			out = append(out, kw)
		}
	}
	return out
}
