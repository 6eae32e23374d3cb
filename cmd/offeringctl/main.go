// offeringctl is a command line client for The Katha API. It covers the
// coach workflows: authenticating, browsing the coach directory, and
// managing session offerings.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/hymavathi2704/thekatha-server/internal/app/models/dto"
	"github.com/hymavathi2704/thekatha-server/internal/client"
)

func main() {
	app := &cli.App{
		Name:  "offeringctl",
		Usage: "manage session offerings on The Katha",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api",
				Usage:   "API base URL",
				Value:   "http://localhost:8080/api/v1",
				EnvVars: []string{"THEKATHA_API_URL"},
			},
			&cli.StringFlag{
				Name:    "token",
				Usage:   "bearer token for authenticated commands",
				EnvVars: []string{"THEKATHA_TOKEN"},
			},
		},
		Commands: []*cli.Command{
			loginCommand(),
			coachesCommand(),
			sessionsCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func apiClient(c *cli.Context) *client.Client {
	api := client.New(c.String("api"))
	if token := c.String("token"); token != "" {
		api.SetToken(token)
	}
	return api
}

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "authenticate and print an access token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Required: true},
		},
		Action: func(c *cli.Context) error {
			api := apiClient(c)
			resp, err := api.Login(c.Context, c.String("email"), c.String("password"))
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s (%s)\n", resp.User.Email, resp.User.Role)
			fmt.Println(resp.Token.AccessToken)
			return nil
		},
	}
}

func coachesCommand() *cli.Command {
	return &cli.Command{
		Name:  "coaches",
		Usage: "browse the coach directory",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list coaches",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "page", Value: 1},
					&cli.IntFlag{Name: "size", Value: 10},
				},
				Action: func(c *cli.Context) error {
					api := apiClient(c)
					coaches, err := api.ListCoaches(c.Context, c.Int("page"), c.Int("size"))
					if err != nil {
						return err
					}
					w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
					fmt.Fprintln(w, "ID\tNAME\tHEADLINE\tSESSIONS")
					for _, coach := range coaches {
						fmt.Fprintf(w, "%d\t%s %s\t%s\t%d\n",
							coach.ID, coach.FirstName, coach.LastName, coach.Headline, coach.OfferingCount)
					}
					return w.Flush()
				},
			},
			{
				Name:      "get",
				Usage:     "show a coach profile with its offerings",
				ArgsUsage: "<coach-id>",
				Action: func(c *cli.Context) error {
					id, err := int64Arg(c, 0, "coach-id")
					if err != nil {
						return err
					}
					api := apiClient(c)
					coach, err := api.GetCoach(c.Context, id)
					if err != nil {
						return err
					}
					return printJSON(coach)
				},
			},
		},
	}
}

func sessionsCommand() *cli.Command {
	offeringFlags := []cli.Flag{
		&cli.StringFlag{Name: "title", Required: true},
		&cli.StringFlag{Name: "description"},
		&cli.IntFlag{Name: "duration", Usage: "duration in minutes", Required: true},
		&cli.IntFlag{Name: "price", Required: true},
		&cli.StringFlag{Name: "format", Usage: "individual, group, workshop, online or in-person"},
		&cli.StringFlag{Name: "date", Usage: "default date, YYYY-MM-DD"},
		&cli.StringFlag{Name: "time", Usage: "default time, HH:MM"},
		&cli.StringFlag{Name: "meeting-link"},
	}

	return &cli.Command{
		Name:  "sessions",
		Usage: "manage your session offerings",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list your session offerings",
				Action: func(c *cli.Context) error {
					api := apiClient(c)
					profile, err := api.FetchMyProfile(c.Context)
					if err != nil {
						return err
					}
					w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
					fmt.Fprintln(w, "ID\tTITLE\tDURATION\tPRICE\tFORMAT")
					for _, o := range profile.Offerings {
						fmt.Fprintf(w, "%d\t%s\t%d min\t%d\t%s\n",
							o.ID, o.Title, o.DurationMinutes, o.Price, o.Format)
					}
					return w.Flush()
				},
			},
			{
				Name:  "create",
				Usage: "create a session offering",
				Flags: offeringFlags,
				Action: func(c *cli.Context) error {
					api := apiClient(c)
					created, err := api.CreateOffering(c.Context, offeringRequest(c))
					if err != nil {
						return err
					}
					fmt.Printf("Created session offering %d\n", created.ID)
					return nil
				},
			},
			{
				Name:      "update",
				Usage:     "replace a session offering",
				ArgsUsage: "<offering-id>",
				Flags:     offeringFlags,
				Action: func(c *cli.Context) error {
					id, err := int64Arg(c, 0, "offering-id")
					if err != nil {
						return err
					}
					api := apiClient(c)
					if _, err := api.UpdateOffering(c.Context, id, offeringRequest(c)); err != nil {
						return err
					}
					fmt.Printf("Updated session offering %d\n", id)
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "delete a session offering",
				ArgsUsage: "<offering-id>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "yes", Usage: "confirm the deletion"},
				},
				Action: func(c *cli.Context) error {
					id, err := int64Arg(c, 0, "offering-id")
					if err != nil {
						return err
					}
					if !c.Bool("yes") {
						return fmt.Errorf("deleting offering %d requires --yes", id)
					}
					api := apiClient(c)
					if err := api.DeleteOffering(c.Context, id); err != nil {
						return err
					}
					fmt.Printf("Deleted session offering %d\n", id)
					return nil
				},
			},
		},
	}
}

func offeringRequest(c *cli.Context) *dto.OfferingRequest {
	return &dto.OfferingRequest{
		Title:       c.String("title"),
		Description: c.String("description"),
		Duration:    c.Int("duration"),
		Price:       c.Int("price"),
		Format:      c.String("format"),
		DefaultDate: c.String("date"),
		DefaultTime: c.String("time"),
		MeetingLink: c.String("meeting-link"),
	}
}

func int64Arg(c *cli.Context, index int, name string) (int64, error) {
	arg := c.Args().Get(index)
	if arg == "" {
		return 0, fmt.Errorf("missing %s argument", name)
	}
	var id int64
	if _, err := fmt.Sscanf(arg, "%d", &id); err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, arg)
	}
	return id, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
