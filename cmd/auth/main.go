package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go-club-recruit/internal/api"
	"go-club-recruit/internal/config"
	"go-club-recruit/internal/session"
)

func usage() {
	fmt.Println("Usage: auth <command> [args]")
	fmt.Println("  login <email>            login with password (prompted)")
	fmt.Println("  login-code <email>       login with emailed code (prompted)")
	fmt.Println("  register <email>         register a new account")
	fmt.Println("  send-code <email>        send a verification code")
	fmt.Println("  reset <email>            reset password with emailed code")
	fmt.Println("  whoami                   show the logged-in user")
	fmt.Println("  logout                   clear the saved session")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Base URL: %s", cfg.BaseURL)

	client := api.NewClient(cfg.BaseURL)
	store := session.NewTokenStore(cfg.TokenPath)
	sess := session.New(client, store)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	switch os.Args[1] {
	case "login":
		email := requireArg(2, "email")
		password := prompt("Password: ")
		if err := sess.Login(ctx, email, password, api.AuthTypePassword); err != nil {
			log.Fatalf("❌ Login failed: %v", err)
		}
		log.Println("✅ Logged in.")
	case "login-code":
		email := requireArg(2, "email")
		if err := session.ValidateStudentEmail(email); err != nil {
			log.Fatalf("❌ %v", err)
		}
		if err := sess.SendEmailCode(ctx, email); err != nil {
			log.Fatalf("❌ Failed to send code: %v", err)
		}
		log.Println("📧 Verification code sent.")
		code := prompt("Code: ")
		if err := sess.Login(ctx, email, code, api.AuthTypeEmailCode); err != nil {
			log.Fatalf("❌ Login failed: %v", err)
		}
		log.Println("✅ Logged in.")
	case "register":
		email := requireArg(2, "email")
		if err := session.ValidateStudentEmail(email); err != nil {
			log.Fatalf("❌ %v", err)
		}
		if err := sess.SendEmailCode(ctx, email); err != nil {
			log.Fatalf("❌ Failed to send code: %v", err)
		}
		log.Println("📧 Verification code sent.")
		req := api.RegisterRequest{
			Email:     email,
			Username:  prompt("Username: "),
			Password:  prompt("Password: "),
			EmailCode: prompt("Code: "),
		}
		if err := client.Register(ctx, req); err != nil {
			log.Fatalf("❌ Registration failed: %v", err)
		}
		log.Println("✅ Registered. You can now login.")
	case "send-code":
		email := requireArg(2, "email")
		if err := sess.SendEmailCode(ctx, email); err != nil {
			log.Fatalf("❌ Failed to send code: %v", err)
		}
		log.Println("📧 Verification code sent.")
	case "reset":
		email := requireArg(2, "email")
		if err := sess.SendEmailCode(ctx, email); err != nil {
			log.Fatalf("❌ Failed to send code: %v", err)
		}
		log.Println("📧 Verification code sent.")
		req := api.ResetPasswordRequest{
			Identifier:  email,
			Code:        prompt("Code: "),
			NewPassword: prompt("New password: "),
		}
		if err := client.ResetPassword(ctx, req); err != nil {
			log.Fatalf("❌ Reset failed: %v", err)
		}
		log.Println("✅ Password reset.")
	case "whoami":
		user, err := sess.CurrentUser(ctx)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		fmt.Printf("%s <%s> role=%s\n", user.Name, user.Email, user.Role)
	case "logout":
		if err := sess.Logout(ctx); err != nil {
			log.Printf("⚠️ Backend logout failed: %v", err)
		}
		log.Println("🔒 Session cleared.")
	default:
		usage()
		os.Exit(1)
	}
}

func requireArg(i int, name string) string {
	if len(os.Args) <= i {
		log.Fatalf("❌ Missing argument: %s", name)
	}
	return os.Args[i]
}

func prompt(label string) string {
	fmt.Print(label)
	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text())
	}
	return ""
}
