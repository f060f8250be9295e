package shell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

const mainMenu = `Выберите действие:
  0 - Записать данные в файл
  1 - Вывести текущие данные
  2 - Начислить премию ко дню программиста
  3 - Начислить премию к 23 февраля / 8 марта
  4 - Проиндексировать зарплаты
  5 - Список сотрудников, которым положен отпуск
  6 - Годовой фонд оплаты труда
  7 - Начать новый расчётный период
  9 - Выход`

const exportMenu = `Формат файла:
  1 - .json
  2 - .csv
  0 - Назад`

const holidayMenu = `Премия к празднику:
  1 - 23 февраля (мужчинам)
  2 - 8 марта (женщинам)
  0 - Назад`

func (m Model) View() string {
	var b strings.Builder

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n\n")
	}

	switch m.state {
	case StateMain:
		b.WriteString(titleStyle.Render("Сотрудники"))
		b.WriteString("\n")
		b.WriteString(mainMenu)
	case StateExportFormat:
		b.WriteString(exportMenu)
	case StateExportName:
		b.WriteString("Выбрана запись в ." + string(m.format) + " файл\n")
		b.WriteString("Введите имя файла без расширения (к примеру, employees):\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter - сохранить, esc - назад"))
	case StateHolidayBonus:
		b.WriteString(holidayMenu)
	case StateResult:
		b.WriteString(titleStyle.Render(m.title))
		for _, line := range m.lines {
			b.WriteString("\n")
			b.WriteString(line)
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("нажмите любую клавишу"))
	case StateExit:
		b.WriteString("Выход из программы...")
	}

	b.WriteString("\n")
	return b.String()
}
