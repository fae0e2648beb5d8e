package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go-club-recruit/internal/api"
	"go-club-recruit/internal/archive"
	"go-club-recruit/internal/config"
	"go-club-recruit/internal/reporter"
	"go-club-recruit/internal/resume"
	"go-club-recruit/internal/review"
	"go-club-recruit/internal/session"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

type console struct {
	cfg      *config.Config
	workflow *review.Workflow
	reporter *reporter.TelegramReporter
	store    *archive.Store
	query    review.Query
}

func main() {
	//load config
	cfg := config.Load()

	client := api.NewClient(cfg.BaseURL)
	tokenStore := session.NewTokenStore(cfg.TokenPath)
	sess := session.New(client, tokenStore)

	ctx := context.Background()
	user, err := sess.RequireAdmin(ctx)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	color.Green("Logged in as %s (%s)", user.Name, user.Email)

	c := &console{
		cfg:      cfg,
		workflow: review.New(client),
		query: review.Query{
			SortBy:     review.SortByTime,
			Descending: true,
			Page:       1,
			PageSize:   cfg.PageSize,
		},
	}

	if cfg.TelegramEnabled() {
		rep, err := reporter.NewTelegramReporter(cfg)
		if err != nil {
			log.Printf("⚠️ Telegram reporter disabled: %v", err)
		} else {
			c.reporter = rep
		}
	}
	if cfg.ArchiveDSN != "" {
		store, err := archive.Connect(ctx, cfg.ArchiveDSN)
		if err != nil {
			log.Printf("⚠️ Archive store disabled: %v", err)
		} else {
			defer store.Close()
			if err := store.EnsureSchema(ctx); err != nil {
				log.Printf("⚠️ Archive schema: %v", err)
			} else {
				c.store = store
			}
		}
	}

	c.search(ctx)

	for {
		displayMenu()
		choice := readLine("")

		switch choice {
		case "1":
			c.query.Text = readLine("Name or major (empty for all): ")
			c.query.Department = readLine("Department filter (empty for all): ")
			c.query.Page = 1
			c.search(ctx)
		case "2":
			c.query.Page++
			c.search(ctx)
		case "3":
			if c.query.Page > 1 {
				c.query.Page--
			}
			c.search(ctx)
		case "4":
			c.toggleSort()
		case "5":
			c.filterPage()
		case "6":
			c.viewDetail(ctx)
		case "7":
			c.decide(ctx, resume.StatusAccepted)
		case "8":
			c.decide(ctx, resume.StatusRejected)
		case "9":
			c.startReview(ctx)
		case "10":
			c.export(ctx)
		case "11":
			c.archivePage(ctx)
		case "12":
			color.Green("Bye.")
			return
		default:
			color.Red("Invalid choice. Please try again.")
		}
	}
}

func displayMenu() {
	color.Cyan("\n=== Club Recruitment Review ===")
	fmt.Println("1. Search Resumes")
	fmt.Println("2. Next Page")
	fmt.Println("3. Previous Page")
	fmt.Println("4. Toggle Sort (current page)")
	fmt.Println("5. Filter Current Page")
	fmt.Println("6. View Resume Detail")
	fmt.Println("7. Approve Resume")
	fmt.Println("8. Reject Resume")
	fmt.Println("9. Start Review (current page)")
	fmt.Println("10. Export Resume PDF")
	fmt.Println("11. Archive Current Page")
	fmt.Println("12. Exit")
	fmt.Print("\nEnter your choice (1-12): ")
}

func readLine(label string) string {
	if label != "" {
		fmt.Print(label)
	}
	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text())
	}
	return ""
}

func readResumeID() (int64, bool) {
	raw := readLine("Resume ID: ")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		color.Red("Invalid resume ID: %s", raw)
		return 0, false
	}
	return id, true
}

func (c *console) search(ctx context.Context) {
	page, total, err := c.workflow.Search(ctx, c.query)
	if err != nil {
		color.Red("Search failed: %v", err)
		return
	}
	c.renderPage(page, total)
}

func (c *console) renderPage(page []resume.Resume, total int) {
	color.Yellow("\nResumes (page %d, %d total)", c.workflow.CurrentPage(), total)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Major", "Status", "Submitted"})

	for _, r := range page {
		submitted := "-"
		if r.SubmittedAt != nil {
			submitted = r.SubmittedAt.Format("2006-01-02 15:04")
		}
		table.Append([]string{
			strconv.FormatInt(r.ResumeID, 10),
			r.Name(),
			r.Major(),
			r.Status.String(),
			submitted,
		})
	}

	table.Render()
}

// toggleSort re-sorts the loaded page locally; the next search reuses the
// same order server-side.
func (c *console) toggleSort() {
	if c.query.SortBy == review.SortByTime {
		c.query.SortBy = review.SortByName
		c.query.Descending = false
	} else {
		c.query.SortBy = review.SortByTime
		c.query.Descending = true
	}
	color.Yellow("Sorting by %s", c.query.SortBy)
	page, total := c.workflow.Page()
	review.SortResumes(page, c.query.SortBy, c.query.Descending)
	c.renderPage(page, total)
}

// filterPage narrows the loaded page by name or major without another
// round trip; searching again restores the full page.
func (c *console) filterPage() {
	text := readLine("Name or major contains: ")
	page, total := c.workflow.Page()
	filtered := review.FilterResumes(page, text)
	color.Yellow("Showing %d of %d on this page", len(filtered), len(page))
	c.renderPage(filtered, total)
}

func (c *console) viewDetail(ctx context.Context) {
	id, ok := readResumeID()
	if !ok {
		return
	}
	r, err := c.workflow.ViewDetail(ctx, id)
	if err != nil {
		color.Red("Failed to load resume %d: %v", id, err)
		return
	}

	color.Yellow("\nResume #%d  %s", r.ResumeID, r.Status)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Field", "Value"})
	for _, f := range r.SimpleFields {
		table.Append([]string{f.FieldLabel, f.FieldValue})
	}
	table.Render()
}

func (c *console) decide(ctx context.Context, status resume.Status) {
	id, ok := readResumeID()
	if !ok {
		return
	}
	var err error
	if status == resume.StatusAccepted {
		err = c.workflow.Approve(ctx, id)
	} else {
		err = c.workflow.Reject(ctx, id)
	}
	if err != nil {
		color.Red("Failed to set status: %v", err)
		c.report(func(rep *reporter.TelegramReporter) error { return rep.SendError(err) })
		return
	}
	color.Green("Resume %d → %s", id, status)

	if c.reporter != nil {
		if r := c.workflow.Detail(); r != nil && r.ResumeID == id {
			c.report(func(rep *reporter.TelegramReporter) error { return rep.SendDecision(r, status) })
		}
	}
	if c.store != nil {
		if r, err := c.workflow.ViewDetail(ctx, id); err == nil {
			if err := c.store.SaveSnapshot(ctx, r); err != nil {
				log.Printf("⚠️ Archive failed: %v", err)
			}
		}
	}
	page, total := c.workflow.Page()
	c.renderPage(page, total)
}

func (c *console) startReview(ctx context.Context) {
	outcome := c.workflow.StartReview(ctx)
	if outcome.Attempted == 0 {
		color.Yellow("No submitted resumes on this page.")
		return
	}
	color.Green("Moved %d/%d resumes to review", outcome.Succeeded, outcome.Attempted)
	for _, err := range outcome.Failed {
		color.Red("  %v", err)
	}
	c.report(func(rep *reporter.TelegramReporter) error {
		return rep.SendReviewSummary(outcome.Attempted, outcome.Succeeded)
	})

	//transitioned resumes may leave the current filter bucket
	if _, _, err := c.workflow.Reload(ctx); err != nil {
		color.Red("Reload failed: %v", err)
		return
	}
	page, total := c.workflow.Page()
	c.renderPage(page, total)
}

func (c *console) export(ctx context.Context) {
	id, ok := readResumeID()
	if !ok {
		return
	}
	name, data, err := c.workflow.ExportPDF(ctx, id)
	if err != nil {
		color.Red("Export failed: %v", err)
		return
	}
	if err := os.MkdirAll(c.cfg.DownloadDir, 0755); err != nil {
		color.Red("Failed to create download directory: %v", err)
		return
	}
	path := filepath.Join(c.cfg.DownloadDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		color.Red("Failed to write %s: %v", path, err)
		return
	}
	color.Green("Saved %s (%d bytes)", path, len(data))
}

func (c *console) archivePage(ctx context.Context) {
	if c.store == nil {
		color.Red("Archive store is not configured (set ARCHIVE_DATABASE_URL).")
		return
	}
	page, _ := c.workflow.Page()
	start := time.Now()
	n, err := c.store.SavePage(ctx, page)
	if err != nil {
		color.Red("Archived %d/%d before failing: %v", n, len(page), err)
		return
	}
	color.Green("Archived %d resumes in %s", n, time.Since(start).Round(time.Millisecond))
}

func (c *console) report(send func(*reporter.TelegramReporter) error) {
	if c.reporter == nil {
		return
	}
	if err := send(c.reporter); err != nil {
		log.Printf("⚠️ Failed to send Telegram message: %v", err)
	}
}
