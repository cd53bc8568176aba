// createadmin — одноразовая утилита: заводит учётную запись администратора
// по ADMIN_USERNAME/ADMIN_PASSWORD. Если логин уже занят — ничего не делает.
package main

import (
	"MachCatalog/internal/config"
	"MachCatalog/internal/model"
	"MachCatalog/internal/repo"
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg := config.NewConfig()

	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		fmt.Fprintln(os.Stderr, "ADMIN_USERNAME and ADMIN_PASSWORD must be set")
		os.Exit(1)
	}

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize database: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	users := repo.NewUserRepository(gormDB)

	if _, err := users.GetUserByLogin(ctx, username); err == nil {
		fmt.Printf("user %q already exists\n", username)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		fmt.Fprintf(os.Stderr, "failed to look up user: %v\n", err)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
		os.Exit(1)
	}

	if _, err := users.CreateUser(ctx, &model.User{Login: username, Password: string(hash)}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("admin user %q created\n", username)
}
