package main

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/di"
	"hotel/infras/postgres"
	"hotel/shared/datetime"
	"hotel/shared/logger"
	"os"
	"text/tabwriter"

	bookingModel "hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

const usageDateTime = `"YYYY-MM-DD HH:MM:SS"`

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)
	logger.WithApp(cfg)

	app := di.InitializeApp()
	defer app.Close(context.Background())

	cliApp := &cli.App{
		Name:  "hotel",
		Usage: "inspect rooms, customers and bookings",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "isolation", Usage: "transaction isolation level, e.g. serializable"},
		},
		Before: func(c *cli.Context) error {
			if !c.IsSet("isolation") {
				return nil
			}

			level, err := postgres.ParseIsolationLevel(c.String("isolation"))
			if err != nil {
				return cli.Exit(err.Error(), 2) //nolint:mnd
			}

			app.Manager.SetIsolationLevel(level)

			return nil
		},
		Commands: []*cli.Command{
			roomsCommand(app),
			availableCommand(app),
			customersCommand(app),
			bookingsCommand(app),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("Command failed")
		app.Close(context.Background())
		os.Exit(1)
	}
}

func roomsCommand(app *di.App) *cli.Command {
	return &cli.Command{
		Name:  "rooms",
		Usage: "list rooms",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "status", Usage: "only rooms with this status"},
			&cli.StringFlag{Name: "type", Usage: "only rooms of this type (standard, deluxe, suite)"},
		},
		Action: func(c *cli.Context) error {
			var (
				rooms []roomModel.Room
				err   error
			)

			switch {
			case c.String("status") != "":
				rooms, err = app.Manager.GetRoomsByStatus(c.Context, c.String("status"))
			case c.String("type") != "":
				rooms, err = app.Manager.GetRoomsByType(c.Context, c.String("type"))
			default:
				rooms, err = app.Manager.GetAllRooms(c.Context)
			}

			if err != nil {
				return err //nolint:wrapcheck
			}

			printRooms(c, rooms)

			return nil
		},
	}
}

func availableCommand(app *di.App) *cli.Command {
	return &cli.Command{
		Name:      "available",
		Usage:     "list rooms free for a stay",
		ArgsUsage: usageDateTime + " " + usageDateTime,
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 { //nolint:mnd
				return cli.Exit("check-in and check-out are required", 2) //nolint:mnd
			}

			checkIn, err := datetime.Parse(c.Args().Get(0))
			if err != nil {
				return err //nolint:wrapcheck
			}

			checkOut, err := datetime.Parse(c.Args().Get(1))
			if err != nil {
				return err //nolint:wrapcheck
			}

			rooms, err := app.Manager.GetAvailableRooms(c.Context, checkIn, checkOut)
			if err != nil {
				return err //nolint:wrapcheck
			}

			printRooms(c, rooms)

			return nil
		},
	}
}

func customersCommand(app *di.App) *cli.Command {
	return &cli.Command{
		Name:  "customers",
		Usage: "list customers",
		Action: func(c *cli.Context) error {
			customers, err := app.Manager.GetAllCustomers(c.Context)
			if err != nil {
				return err //nolint:wrapcheck
			}

			w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0) //nolint:mnd
			fmt.Fprintln(w, "ID\tNAME\tAGE\tPHONE\tEMAIL")

			for _, customer := range customers {
				fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n",
					customer.ID(), customer.Name(), customer.Age(), customer.PhoneNumber(), customer.Email())
			}

			return w.Flush() //nolint:wrapcheck
		},
	}
}

func bookingsCommand(app *di.App) *cli.Command {
	return &cli.Command{
		Name:  "bookings",
		Usage: "list bookings",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "room", Usage: "only bookings of this room"},
		},
		Action: func(c *cli.Context) error {
			var (
				bookings []bookingModel.Booking
				err      error
			)

			if c.IsSet("room") {
				bookings, err = app.Manager.GetBookingsByRoom(c.Context, c.Int("room"))
			} else {
				bookings, err = app.Manager.GetAllBookings(c.Context)
			}

			if err != nil {
				return err //nolint:wrapcheck
			}

			w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0) //nolint:mnd
			fmt.Fprintln(w, "ID\tROOM\tCUSTOMER\tCHECK-IN\tCHECK-OUT\tCOST\tSTATUS")

			for _, b := range bookings {
				fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%s\t%.2f\t%s\n",
					b.ID(), b.RoomNumber(), b.CustomerID(), b.CheckIn(), b.CheckOut(), b.Cost(), b.Status())
			}

			return w.Flush() //nolint:wrapcheck
		},
	}
}

func printRooms(c *cli.Context, rooms []roomModel.Room) {
	w := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0) //nolint:mnd
	fmt.Fprintln(w, "ROOM\tTYPE\tSTATUS\tBASE\tTOTAL")

	for _, room := range rooms {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%.2f\n", room.Number, room.Type(), room.Status, room.BasePrice, room.TotalPrice())
	}

	if err := w.Flush(); err != nil {
		log.Error().Err(err).Msg("failed to write rooms")
	}
}
