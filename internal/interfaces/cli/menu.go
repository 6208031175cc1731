package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"ranking/internal/application"
)

// DefaultTopN 是显示排行榜时默认列出的条数。
const DefaultTopN = 10

// Menu 是排行榜的文本菜单。每次 Run 只执行一个操作。
type Menu struct {
	rankService application.RankService
	in          *bufio.Reader
	out         io.Writer
	topN        int
}

// NewMenu 创建一个新的 Menu。
func NewMenu(rankService application.RankService, in io.Reader, out io.Writer, topN int) *Menu {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Menu{
		rankService: rankService,
		in:          bufio.NewReader(in),
		out:         out,
		topN:        topN,
	}
}

// Run 显示菜单，读取一个选项并执行。
// 无效选项只打印提示，不修改排行榜。
func (m *Menu) Run() error {
	fmt.Fprintln(m.out, "=== Global Ranking Updater ===")
	fmt.Fprintln(m.out, "1. Add sample data")
	fmt.Fprintln(m.out, "2. Show current ranking")
	fmt.Fprintln(m.out, "3. Clear ranking")
	fmt.Fprint(m.out, "Choose an option (1-3): ")

	choice, err := m.readChoice()
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return m.seed()
	case "2":
		return m.show()
	case "3":
		return m.clear()
	default:
		fmt.Fprintln(m.out, "Invalid option.")
		return nil
	}
}

func (m *Menu) readChoice() (string, error) {
	line, err := m.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "read option")
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) seed() error {
	result, err := m.rankService.SeedSamples()
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Ranking updated with %d sample entries.\n", result.Added)
	fmt.Fprintf(m.out, "Total entries in ranking: %d\n", result.Total)
	return nil
}

func (m *Menu) show() error {
	top, total, err := m.rankService.GetTopN(m.topN)
	if err != nil {
		return err
	}
	if total == 0 {
		fmt.Fprintln(m.out, "\nNo entries in the ranking.")
		return nil
	}

	fmt.Fprintf(m.out, "\nCurrent ranking (%d entries):\n", total)
	for i, e := range top {
		fmt.Fprintf(m.out, "%2dº %-15s - %6d pts (Level %d) - %s\n", i+1, e.Name, e.Score, e.Level, e.DisplayDate())
	}
	if rest := total - len(top); rest > 0 {
		fmt.Fprintf(m.out, "... and %d more entries\n", rest)
	}
	return nil
}

func (m *Menu) clear() error {
	if err := m.rankService.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Ranking cleared successfully.")
	return nil
}
