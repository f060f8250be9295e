package shell

import (
	"fmt"
	"strings"

	"go-roster/internal/roster"

	tea "github.com/charmbracelet/bubbletea"
)

// State is a screen of the menu.
type State int

const (
	StateMain State = iota
	StateExportFormat
	StateExportName
	StateHolidayBonus
	StateResult
	StateExit
)

func (s State) String() string {
	switch s {
	case StateMain:
		return "main"
	case StateExportFormat:
		return "export_format"
	case StateExportName:
		return "export_name"
	case StateHolidayBonus:
		return "holiday_bonus"
	case StateResult:
		return "result"
	case StateExit:
		return "exit"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const (
	msgCheckInput = "Проверьте ввод"
	msgCheckData  = "Проверьте введённые данные"
)

// action handles one menu choice and returns the next model.
type action func(m Model) (Model, tea.Cmd)

// transitions lists every menu choice per state. StateExportName reads free
// text and StateResult accepts any key, so both are handled in Update.
var transitions = map[State]map[string]action{
	StateMain: {
		"0": goTo(StateExportFormat),
		"1": showAll,
		"2": applyOp(roster.OpProgrammerBonus, "Программистам начислена премия"),
		"3": goTo(StateHolidayBonus),
		"4": applyOp(roster.OpIndexation, "Зарплаты проиндексированы"),
		"5": showVacation,
		"6": showWageFund,
		"7": startCycle,
		"9": exit,
	},
	StateExportFormat: {
		"1": askName(roster.FormatJSON),
		"2": askName(roster.FormatCSV),
		"0": goTo(StateMain),
	},
	StateHolidayBonus: {
		"1": applyOp(roster.OpMenBonus, "Начислены премии мужчинам"),
		"2": applyOp(roster.OpWomenBonus, "Начислены премии женщинам"),
		"0": goTo(StateMain),
	},
}

func goTo(next State) action {
	return func(m Model) (Model, tea.Cmd) {
		m.state = next
		return m, nil
	}
}

func exit(m Model) (Model, tea.Cmd) {
	m.state = StateExit
	return m, tea.Quit
}

func askName(format roster.Format) action {
	return func(m Model) (Model, tea.Cmd) {
		m.state = StateExportName
		m.format = format
		m.input.SetValue("")
		cmd := m.input.Focus()
		return m, cmd
	}
}

func showAll(m Model) (Model, tea.Cmd) {
	var lines []string
	for _, summary := range m.svc.Summaries(m.ctx) {
		lines = append(lines, summary, "")
	}
	return m.result("Текущие данные", lines...), nil
}

func showVacation(m Model) (Model, tea.Cmd) {
	names := m.svc.VacationEligible(m.ctx)
	if len(names) == 0 {
		return m.result("Отпуск не положен ни одному сотруднику"), nil
	}
	lines := make([]string, len(names))
	for i, n := range names {
		lines[i] = "  " + n
	}
	return m.result("Отпуск положен следующим сотрудникам:", lines...), nil
}

func showWageFund(m Model) (Model, tea.Cmd) {
	return m.result(fmt.Sprintf("Годовой фонд оплаты труда: %d", m.svc.WageFund(m.ctx))), nil
}

func startCycle(m Model) (Model, tea.Cmd) {
	id := m.svc.StartCycle(m.ctx)
	return m.result("Начат новый расчётный период", "  "+id), nil
}

func applyOp(op roster.Operation, done string) action {
	return func(m Model) (Model, tea.Cmd) {
		n, err := m.svc.Apply(m.ctx, op)
		if err != nil {
			return m.fail(err), nil
		}
		if n == 0 {
			return m.result(done, "  изменений нет: операция уже выполнена в этом периоде"), nil
		}
		return m.result(done, fmt.Sprintf("  сотрудников: %d", n)), nil
	}
}

func submitName(m Model) (Model, tea.Cmd) {
	name := strings.TrimSpace(m.input.Value())
	if name == "" {
		m.notice = msgCheckInput
		return m, nil
	}
	m.input.Blur()
	path, err := m.svc.Export(m.ctx, m.format, name)
	if err != nil {
		return m.fail(err), nil
	}
	return m.result("Файл записан в: " + path), nil
}
