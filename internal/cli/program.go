package cli

import (
	"context"
	"fmt"

	"github.com/gerdlab/refluxtrack/internal/logger"
	"github.com/gerdlab/refluxtrack/internal/phenotype"
	"github.com/gerdlab/refluxtrack/internal/program"
	"github.com/gerdlab/refluxtrack/internal/session"
)

type PhenotypeCmd struct{}

func (c *PhenotypeCmd) Run(appCtx *Context) error {
	ctx := context.Background()
	if err := appCtx.Guard(ctx, session.ScreenHome); err != nil {
		return err
	}

	result, err := appCtx.API.Phenotype(ctx)
	if err != nil {
		return err
	}

	fmt.Println(phenotype.Render(result))
	return nil
}

type ProgramCmd struct{}

func (c *ProgramCmd) Run(appCtx *Context) error {
	ctx := context.Background()
	if err := appCtx.Guard(ctx, session.ScreenHome); err != nil {
		return err
	}

	p, err := appCtx.API.MyProgram(ctx)
	if err != nil {
		return err
	}

	fmt.Println(program.Render(p))
	return nil
}

type RecsCmd struct {
	Show     int `help:"Show the full body of one recommendation." placeholder:"ID"`
	MarkRead int `help:"Mark a recommendation as read." placeholder:"ID"`
}

func (c *RecsCmd) Run(appCtx *Context) error {
	ctx := context.Background()
	if err := appCtx.Guard(ctx, session.ScreenHome); err != nil {
		return err
	}

	recs, err := appCtx.API.Recommendations(ctx)
	if err != nil {
		return err
	}

	if len(recs) == 0 {
		fmt.Println("No recommendations yet.")
		return nil
	}

	for _, rec := range recs {
		marker := "○"
		if rec.IsRead || rec.ID == c.MarkRead {
			marker = "●"
		}
		fmt.Printf("%s %3d  %s\n", marker, rec.ID, rec.Title)
		if rec.ID == c.Show {
			fmt.Printf("\n%s\n\n", rec.Body)
		}
	}

	// Read-marking is fire and forget: the list above already shows the
	// optimistic state, a failure is only logged.
	if c.MarkRead != 0 {
		if err := appCtx.API.SetRecommendationRead(ctx, c.MarkRead, true); err != nil {
			logger.Warn("Failed to mark recommendation as read", "id", c.MarkRead, "error", err)
		}
	}

	return nil
}
