// Command book runs the interactive booking flow against a running API:
// pick a provider, pick a date, pick an open hour, confirm.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/hourbook/hourbook/pkg/booking"
)

type consoleNavigator struct {
	done chan struct{}
	once sync.Once
}

func (n *consoleNavigator) GoBack() {
	n.once.Do(func() { close(n.done) })
}

func (n *consoleNavigator) NavigateTo(screenID string, payload any) {
	if screenID == booking.ScreenAppointmentCreated {
		if p, ok := payload.(booking.ConfirmationPayload); ok {
			created := time.UnixMilli(p.Date)
			fmt.Printf("\nAgendamento concluído para %s\n", created.Format("02/01/2006 às 15:04"))
		}
	}
	n.once.Do(func() { close(n.done) })
}

type consoleNotifier struct{}

func (consoleNotifier) Alert(title, message string) {
	fmt.Printf("\n[!] %s\n    %s\n", title, message)
}

type envSession struct {
	avatar string
}

func (s envSession) AvatarURL() string {
	if s.avatar != "" {
		return s.avatar
	}
	return booking.AvatarPlaceholder
}

func main() {
	_ = godotenv.Load()

	baseURL := flag.String("url", envOr("HOURBOOK_URL", "http://localhost:8080"), "API base URL")
	token := flag.String("token", os.Getenv("HOURBOOK_TOKEN"), "bearer token")
	providerID := flag.String("provider", os.Getenv("HOURBOOK_PROVIDER"), "initial provider id")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *providerID == "" {
		fmt.Fprintln(os.Stderr, "a provider id is required: -provider or HOURBOOK_PROVIDER")
		os.Exit(1)
	}

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
			os.Exit(1)
		}
	}
	defer logger.Sync()

	client := booking.NewClient(*baseURL,
		booking.WithToken(*token),
		booking.WithLogger(logger),
	)

	nav := &consoleNavigator{done: make(chan struct{})}
	changed := make(chan struct{}, 1)

	scheduler := booking.NewScheduler(booking.SchedulerDeps{
		Feed:      client,
		Submitter: client,
		Navigator: nav,
		Notifier:  consoleNotifier{},
		Logger:    logger,
		OnChange: func(booking.State) {
			select {
			case changed <- struct{}{}:
			default:
			}
		},
	}, *providerID)
	defer scheduler.Close()

	var session booking.Session = envSession{avatar: os.Getenv("HOURBOOK_AVATAR")}
	fmt.Printf("hourbook — %s\n", session.AvatarURL())

	reader := bufio.NewScanner(os.Stdin)

	for {
		settle(changed)
		render(scheduler.Snapshot())

		select {
		case <-nav.done:
			return
		default:
		}

		fmt.Print("> ")
		if !reader.Scan() {
			return
		}

		line := strings.TrimSpace(reader.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "p":
			if len(fields) == 2 {
				scheduler.SelectProvider(fields[1])
			}
		case "d":
			if len(fields) == 2 {
				if date, err := time.ParseInLocation("2006-01-02", fields[1], time.Local); err == nil {
					scheduler.SelectDate(date)
				} else {
					fmt.Println("data inválida, use AAAA-MM-DD")
				}
			}
		case "h":
			if len(fields) == 2 {
				if hour, err := strconv.Atoi(fields[1]); err == nil {
					scheduler.SelectHour(hour)
				}
			}
		case "s":
			scheduler.Submit()
		case "b":
			scheduler.GoBack()
		case "q":
			return
		default:
			fmt.Println("comandos: p <id> | d <AAAA-MM-DD> | h <hora> | s | b | q")
		}
	}
}

// settle waits briefly for in-flight fetches to land before re-rendering.
func settle(changed chan struct{}) {
	for {
		select {
		case <-changed:
		case <-time.After(300 * time.Millisecond):
			return
		}
	}
}

func render(snap booking.State) {
	fmt.Println()
	fmt.Printf("Data: %s\n", snap.Date.Format("02/01/2006"))

	switch snap.ProvidersState {
	case booking.FetchLoading:
		fmt.Println("Prestadores: carregando...")
	case booking.FetchFailed:
		fmt.Println("Prestadores: indisponíveis")
	default:
		fmt.Println("Prestadores:")
		for _, p := range snap.Providers {
			marker := " "
			if p.ID == snap.ProviderID {
				marker = "*"
			}
			fmt.Printf("  %s %s  %s\n", marker, p.ID, p.Name)
		}
	}

	switch snap.AvailabilityState {
	case booking.FetchLoading:
		fmt.Println("Horários: carregando...")
	case booking.FetchFailed:
		fmt.Println("Horários: indisponíveis")
	default:
		fmt.Println("Manhã:")
		printSlots(snap.Morning(), snap.Hour)
		fmt.Println("Tarde:")
		printSlots(snap.Afternoon(), snap.Hour)
	}

	if snap.Submitting {
		fmt.Println("Enviando agendamento...")
	}
}

func printSlots(slots []booking.DisplaySlot, selected int) {
	if len(slots) == 0 {
		fmt.Println("  (nenhum horário)")
		return
	}
	for _, s := range slots {
		switch {
		case s.Hour == selected && s.Available:
			fmt.Printf("  [%s]", s.Label)
		case s.Available:
			fmt.Printf("   %s ", s.Label)
		default:
			fmt.Printf("   --:-- ")
		}
	}
	fmt.Println()
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
