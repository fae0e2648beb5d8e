package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go-club-recruit/internal/api"
	"go-club-recruit/internal/authoring"
	"go-club-recruit/internal/config"
	"go-club-recruit/internal/resume"
	"go-club-recruit/internal/session"
)

// answersFile mirrors the editable parts of a resume so an applicant can
// fill everything offline and apply it in one run.
type answersFile struct {
	Fields      map[string]string `json:"fields"`
	Departments struct {
		First  string `json:"first"`
		Second string `json:"second"`
	} `json:"departments"`
	Interview struct {
		First      string `json:"first"`
		Second     string `json:"second"`
		CanAttend  string `json:"canAttend"`
		CustomTime string `json:"customTime"`
	} `json:"interview"`
	TechStack []string `json:"techStack"`
	// Photo is a local image path; it is size-checked and staged as base64.
	Photo string `json:"photo"`
}

func usage() {
	fmt.Println("Usage: applicant <command> [args]")
	fmt.Println("  view                     show the current resume")
	fmt.Println("  fill <answers.json>      stage answers and save a draft")
	fmt.Println("  submit                   save and submit the resume")
	fmt.Println("  update <answers.json>    edit an already submitted resume")
	fmt.Println("  cancel                   discard staged edits, reload from server")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Cycle: %d", cfg.CycleID)

	client := api.NewClient(cfg.BaseURL)
	store := session.NewTokenStore(cfg.TokenPath)
	sess := session.New(client, store)
	if !sess.LoggedIn() {
		log.Fatal("🔒 Not logged in. Run the auth tool first.")
	}

	//setup context with timeout = 5 mins
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	wf := authoring.New(client, cfg.CycleID)
	if err := wf.LoadOrCreate(ctx); err != nil {
		log.Fatalf("❌ Failed to load resume: %v", err)
	}

	switch os.Args[1] {
	case "view":
		printResume(wf)
	case "fill":
		applyAnswers(wf, requireArg(2, "answers.json"))
		if err := wf.Save(ctx); err != nil {
			log.Fatalf("❌ Save failed: %v", err)
		}
		log.Println("💾 Draft saved.")
		saveArtifact(wf.Resume())
	case "submit":
		if err := wf.Submit(ctx); err != nil {
			log.Fatalf("❌ Submit failed: %v", err)
		}
		log.Println("🎉 Resume submitted.")
		saveArtifact(wf.Resume())
	case "update":
		applyAnswers(wf, requireArg(2, "answers.json"))
		if err := wf.Update(ctx); err != nil {
			log.Fatalf("❌ Update failed: %v", err)
		}
		log.Println("💾 Resume updated.")
		saveArtifact(wf.Resume())
	case "cancel":
		if err := wf.CancelEdit(ctx); err != nil {
			log.Fatalf("❌ Failed to reload: %v", err)
		}
		log.Println("↩️ Edits discarded, server state reloaded.")
	default:
		usage()
		os.Exit(1)
	}
}

func applyAnswers(wf *authoring.Workflow, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("❌ Failed to read answers file: %v", err)
	}
	var ans answersFile
	if err := json.Unmarshal(data, &ans); err != nil {
		log.Fatalf("❌ Failed to parse answers file: %v", err)
	}

	for key, value := range ans.Fields {
		if err := wf.SetField(key, value); err != nil {
			log.Fatalf("❌ Field %q: %v", key, err)
		}
	}
	if ans.Departments.First != "" {
		must("department", wf.SetDepartment("first", ans.Departments.First))
	}
	if ans.Departments.Second != "" {
		must("department", wf.SetDepartment("second", ans.Departments.Second))
	}
	if ans.Interview.CanAttend != "" {
		must("interview", wf.SetInterviewTime("canAttend", ans.Interview.CanAttend))
	}
	if ans.Interview.First != "" {
		must("interview", wf.SetInterviewTime("first", ans.Interview.First))
	}
	if ans.Interview.Second != "" {
		must("interview", wf.SetInterviewTime("second", ans.Interview.Second))
	}
	if ans.Interview.CustomTime != "" {
		must("interview", wf.SetInterviewTime("customTime", ans.Interview.CustomTime))
	}
	if len(ans.TechStack) > 0 {
		must("tech stack", wf.SetTechStack(ans.TechStack))
	}
	if ans.Photo != "" {
		data, err := os.ReadFile(ans.Photo)
		if err != nil {
			log.Fatalf("❌ Failed to read photo %s: %v", ans.Photo, err)
		}
		must("photo", wf.SetPhoto(data))
	}
	log.Printf("📝 Staged %d answers", len(ans.Fields))
}

func must(what string, err error) {
	if err != nil {
		log.Fatalf("❌ Failed to set %s: %v", what, err)
	}
}

func requireArg(i int, name string) string {
	if len(os.Args) <= i {
		log.Fatalf("❌ Missing argument: %s", name)
	}
	return os.Args[i]
}

func printResume(wf *authoring.Workflow) {
	r := wf.Resume()
	fmt.Printf("Resume #%d  status: %s\n", r.ResumeID, r.Status)
	if r.SubmittedAt != nil {
		fmt.Printf("Submitted: %s\n", r.SubmittedAt.Format("2006-01-02 15:04"))
	}
	for _, f := range r.SimpleFields {
		fmt.Printf("  %-12s %s\n", f.FieldLabel, f.FieldValue)
	}
	if !wf.CanEdit() {
		fmt.Println("(read-only: resume is under review or decided)")
	}
}

func saveArtifact(r *resume.Resume) {
	//create logs directory if not exists
	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create logs directory: %v", err)
		return
	}

	filename := fmt.Sprintf("resume-%s.json", time.Now().Format("2006-01-02"))
	filePath := filepath.Join(logDir, filename)

	data, err := json.MarshalIndent(r, "", " ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal resume to JSON: %v", err)
		return
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write artifact file: %v", err)
		return
	}

	log.Printf("📁 Snapshot saved to %s", filePath)
}
