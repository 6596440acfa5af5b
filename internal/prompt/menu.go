package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// HandlerFunc runs one menu action. Handlers print their own outcome;
// the returned error only decides whether the loop goes on.
type HandlerFunc func(ctx context.Context, p *Prompt) error

type Item struct {
	Label   string
	Handler HandlerFunc
}

// Menu numbers Items from 1 and appends an Exit entry after them.
type Menu struct {
	Title    string
	Items    []Item
	Farewell string
}

// Run loops until Exit is chosen or the input ends. Failed actions never
// stop the loop; only a read error or a canceled ctx does.
func (m *Menu) Run(ctx context.Context, p *Prompt) error {
	exit := len(m.Items) + 1

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.print(p, exit)
		choice, err := p.Int(fmt.Sprintf("Enter your choice (1-%d): ", exit))
		switch {
		case errors.Is(err, io.EOF):
			p.Println()
			return nil
		case errors.Is(err, ErrInvalidInput):
			p.Println("Invalid choice. Please try again.")
			continue
		case err != nil:
			return err
		}

		if choice == exit {
			p.Println(m.Farewell)
			return nil
		}
		if choice < 1 || choice > len(m.Items) {
			p.Println("Invalid choice. Please try again.")
			continue
		}

		err = m.Items[choice-1].Handler(ctx, p)
		switch {
		case errors.Is(err, io.EOF):
			p.Println()
			return nil
		case errors.Is(err, ErrInvalidInput):
			p.Println("Invalid input. Please try again.")
		}
	}
}

func (m *Menu) print(p *Prompt, exit int) {
	p.Printf("\n%s\n", m.Title)
	for i, item := range m.Items {
		p.Printf("%d. %s\n", i+1, item.Label)
	}
	p.Printf("%d. Exit\n", exit)
}
