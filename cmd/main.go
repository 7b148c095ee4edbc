package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"hotel-booking-client/cmd/bootstrap"
	"hotel-booking-client/internal/pkg/errs"
	"hotel-booking-client/internal/pkg/session"
	"hotel-booking-client/internal/usecase"
	"hotel-booking-client/internal/usecase/readmodel"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func init() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()
}

// sessionFromEnv rebuilds the persisted client session. The browser app
// kept this in local storage; here it travels through the environment and
// is handed to each use case explicitly.
func sessionFromEnv() session.Session {
	return session.Session{
		Token:   os.Getenv("SESSION_TOKEN"),
		UserID:  os.Getenv("SESSION_USER_ID"),
		Name:    os.Getenv("SESSION_NAME"),
		IsAdmin: strings.EqualFold(os.Getenv("SESSION_IS_ADMIN"), "true"),
	}
}

type app struct {
	inventory    usecase.InventoryUseCase
	reservations usecase.ReservationUseCase
	auth         usecase.AuthUseCase
	logger       *slog.Logger
}

func newApp(
	inventory usecase.InventoryUseCase,
	reservations usecase.ReservationUseCase,
	auth usecase.AuthUseCase,
	logger *slog.Logger,
) *app {
	return &app{inventory: inventory, reservations: reservations, auth: auth, logger: logger}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errs.New("usage: hotel-client <rooms|options|reservations|history|login> [args]")
	}

	sess := sessionFromEnv()

	switch args[0] {
	case "rooms":
		types, err := a.inventory.RoomTypes(ctx, sess)
		if err != nil {
			return err
		}
		for _, t := range types {
			fmt.Printf("%-16s available %d/%d  price %s  %s\n",
				t.Type, t.AvailableCount, t.Total, t.Price, t.Description)
		}
		return nil

	case "options":
		options, err := a.inventory.TypeOptions(ctx, sess)
		if err != nil {
			return err
		}
		for _, o := range options {
			fmt.Printf("%-16s room %s\n", o.Type, o.RoomID)
		}
		return nil

	case "reservations":
		rows, err := a.reservations.List(ctx, sess)
		if err != nil {
			return err
		}
		printReservations(rows)
		return nil

	case "history":
		userID := sess.UserID
		if len(args) > 1 {
			userID = args[1]
		}
		rows, err := a.reservations.History(ctx, sess, userID)
		if err != nil {
			return err
		}
		printReservations(rows)
		return nil

	case "login":
		if len(args) < 3 {
			return errs.New("usage: hotel-client login <email> <password>")
		}
		logged, err := a.auth.Login(ctx, usecase.Credentials{Email: args[1], Password: args[2]})
		if err != nil {
			return err
		}
		fmt.Printf("SESSION_TOKEN=%s\nSESSION_USER_ID=%s\nSESSION_NAME=%s\nSESSION_IS_ADMIN=%t\n",
			logged.Token, logged.UserID, logged.Name, logged.IsAdmin)
		return nil

	default:
		return errs.Newf("unknown command %q", args[0])
	}
}

func printReservations(rows []*readmodel.ReservationRM) {
	for _, r := range rows {
		reqs := "-"
		if len(r.RequirementLabels) > 0 {
			reqs = strings.Join(r.RequirementLabels, ", ")
		}
		fmt.Printf("%s  %s to %s  %-12s room %-6s  [%s]  %s\n",
			r.ID, r.CheckInDate, r.CheckOutDate, r.RoomType, r.RoomNumber, reqs, r.AdditionalRequests)
	}
}

func main() {
	var application *app
	fxApp := fx.New(
		bootstrap.Module,
		fx.Provide(newApp),
		fx.Populate(&application),
		fx.NopLogger,
	)

	ctx := context.Background()
	if err := fxApp.Start(ctx); err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}

	runErr := application.run(ctx, os.Args[1:])
	if runErr != nil {
		for _, line := range errs.ExtractStackLines(runErr, 1) {
			slog.Error(line)
		}
	}

	if err := fxApp.Stop(ctx); err != nil {
		slog.Error("failed to stop cleanly", "error", err)
	}
	if runErr != nil {
		os.Exit(1)
	}
}
