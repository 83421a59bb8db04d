package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/hackteams/go/internal/catalog"
	"github.com/mcdev12/hackteams/go/internal/dbconfig"
	"github.com/mcdev12/hackteams/go/internal/teams"
	"github.com/mcdev12/hackteams/go/internal/users"
)

// Snapshot mirrors the seed JSON
type Snapshot struct {
	Users []User `json:"users"`
	Teams []Team `json:"teams"`
}

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type Team struct {
	LeaderID    string   `json:"leader_id"`
	EventID     string   `json:"event_id"`
	TeamName    string   `json:"team_name"`
	Description string   `json:"description"`
	TeamSize    int      `json:"team_size"`
	RolesNeeded []string `json:"roles_needed"`
}

func main() {
	path := "go/internal/assets/seed.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	// 1) Load the JSON snapshot
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read JSON: %v\n", err)
		os.Exit(1)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal JSON: %v\n", err)
		os.Exit(1)
	}

	// 2) Connect using shared dbconfig
	ctx := context.Background()
	pool, err := dbconfig.NewConfigFromEnv().OpenPool(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// 3) Upsert users. Profiles belong to the account service, so the seed
	// writes them directly.
	var inserted, skipped, errs int
	for _, u := range snap.Users {
		cmdTag, err := pool.Exec(ctx, `
            INSERT INTO users (id, username, full_name, email)
            VALUES ($1, $2, NULLIF($3, ''), $4)
            ON CONFLICT (id) DO NOTHING
        `, u.ID, u.Username, u.FullName, u.Email)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error inserting user %s: %v\n", u.ID, err)
			errs++
			continue
		}
		if cmdTag.RowsAffected() == 1 {
			inserted++
		} else {
			skipped++
		}
	}
	fmt.Printf("Users seed complete: %d total, %d inserted, %d skipped, %d errors\n",
		len(snap.Users), inserted, skipped, errs)

	// 4) Create teams through the app so the leader is seated like any other
	// team. A team whose name already exists in its event is skipped.
	app := teams.NewApp(teams.NewRepository(pool), users.NewRepository(pool), catalog.Default(), clockwork.NewRealClock(), teams.Config{})
	inserted, skipped, errs = 0, 0, 0
	for _, t := range snap.Teams {
		created, err := seedTeam(ctx, app, t)
		switch {
		case err != nil:
			fmt.Fprintf(os.Stderr, "error creating team %q: %v\n", t.TeamName, err)
			errs++
		case created:
			inserted++
		default:
			skipped++
		}
	}
	fmt.Printf("Teams seed complete: %d total, %d inserted, %d skipped, %d errors\n",
		len(snap.Teams), inserted, skipped, errs)
}

func seedTeam(ctx context.Context, app *teams.App, t Team) (bool, error) {
	leaderID, err := uuid.Parse(t.LeaderID)
	if err != nil {
		return false, fmt.Errorf("leader_id: %w", err)
	}
	eventID, err := uuid.Parse(t.EventID)
	if err != nil {
		return false, fmt.Errorf("event_id: %w", err)
	}

	existing, err := app.ListTeams(ctx, teams.TeamFilter{EventID: eventID})
	if err != nil {
		return false, err
	}
	for _, e := range existing {
		if e.TeamName == t.TeamName {
			return false, nil
		}
	}

	_, err = app.CreateTeam(ctx, teams.CreateTeamRequest{
		LeaderID:    leaderID,
		EventID:     eventID,
		TeamName:    t.TeamName,
		Description: t.Description,
		TeamSize:    t.TeamSize,
		RolesNeeded: t.RolesNeeded,
	})
	return err == nil, err
}
