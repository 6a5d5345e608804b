package viewer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/roteiro/foundation/roteiro/evaluator"
)

type fakeInterpreter struct {
	source string
	trip   *evaluator.TripState
	err    error
}

func (f *fakeInterpreter) Interpret(_ context.Context, source string) (*evaluator.TripState, error) {
	f.source = source
	return f.trip, f.err
}

func lisboa(custo int64) *evaluator.TripState {
	trip := evaluator.NewTripState()
	destino, pais := "Lisboa", "Portugal"
	trip.Destino = &destino
	trip.Pais = &pais
	trip.Budget = 500
	trip.TotalCusto = custo
	trip.Itinerario[1] = []string{"Atividade: Museu"}
	return trip
}

func sized(t *testing.T, m Model) Model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return updated.(Model)
}

func loaded(t *testing.T, m Model, trip *evaluator.TripState, err error) Model {
	t.Helper()
	updated, _ := m.Update(tripLoadedMsg{trip: trip, loadedAt: time.Now(), err: err})
	return updated.(Model)
}

func TestViewBeforeResize(t *testing.T) {
	m := New(Config{Path: "lisboa.rot"})
	if !strings.Contains(m.View(), "Loading lisboa.rot") {
		t.Errorf("View() = %q", m.View())
	}
}

func TestLoadedTripIsShown(t *testing.T) {
	m := loaded(t, sized(t, New(Config{Path: "lisboa.rot"})), lisboa(50), nil)

	if m.loading || m.loads != 1 {
		t.Errorf("loading = %v, loads = %d", m.loading, m.loads)
	}
	view := m.View()
	for _, want := range []string{"Lisboa, Portugal", "$50 / $500 USD", "Atividade: Museu", "reload"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestStatusBarShowsOverrun(t *testing.T) {
	m := loaded(t, sized(t, New(Config{Path: "x.rot"})), lisboa(650), nil)
	if status := m.renderStatusBar(); !strings.Contains(status, "(+$150)") {
		t.Errorf("status bar = %q", status)
	}
}

func TestErrorKeepsLastTrip(t *testing.T) {
	m := sized(t, New(Config{Path: "x.rot"}))
	m = loaded(t, m, lisboa(0), nil)
	m = loaded(t, m, nil, errors.New("syntax error at line 2, column 1"))

	body := m.renderBody()
	if !strings.Contains(body, "syntax error at line 2") {
		t.Errorf("error not shown: %q", body)
	}
	if !strings.Contains(body, "Lisboa") {
		t.Error("last valid itinerary should stay visible")
	}
}

func TestKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want tea.Msg
	}{
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, tea.QuitMsg{}},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, tea.QuitMsg{}},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, tea.QuitMsg{}},
		{"r reloads", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, reloadMsg{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := sized(t, New(Config{Path: "x.rot"}))
			_, cmd := m.Update(tt.key)
			if cmd == nil {
				t.Fatal("expected a command")
			}
			if got := cmd(); got != tt.want {
				t.Errorf("cmd() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestReloadSetsLoading(t *testing.T) {
	m := loaded(t, sized(t, New(Config{Path: "x.rot"})), lisboa(0), nil)
	updated, cmd := m.Update(reloadMsg{})
	if !updated.(Model).loading || cmd == nil {
		t.Error("reload should start loading")
	}
}

func TestLoadTrip(t *testing.T) {
	interp := &fakeInterpreter{trip: lisboa(10)}
	m := New(Config{Path: "lisboa.rot", Interpreter: interp})
	m.readFile = func(path string) ([]byte, error) {
		if path != "lisboa.rot" {
			t.Errorf("read %q", path)
		}
		return []byte(`destino "Lisboa"`), nil
	}

	msg, ok := m.loadTrip().(tripLoadedMsg)
	if !ok {
		t.Fatal("loadTrip() should return tripLoadedMsg")
	}
	if msg.err != nil || msg.trip == nil || msg.loadedAt.IsZero() {
		t.Errorf("msg = %+v", msg)
	}
	if interp.source != `destino "Lisboa"` {
		t.Errorf("interpreted %q", interp.source)
	}

	m.readFile = func(string) ([]byte, error) { return nil, errors.New("missing") }
	if msg := m.loadTrip().(tripLoadedMsg); msg.err == nil {
		t.Error("read failure should be reported")
	}

	if msg := New(Config{}).loadTrip().(tripLoadedMsg); msg.err == nil {
		t.Error("missing interpreter should be reported")
	}
}
