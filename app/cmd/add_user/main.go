package main

import (
	"flag"
	"fmt"

	"greenview-homes/app/config"
	"greenview-homes/app/routes/auth"
)

// Creates the first administrator account. Administrators do not belong to
// a family and are approved immediately.
func main() {
	email := flag.String("email", "", "administrator email")
	password := flag.String("password", "", "administrator password")
	firstName := flag.String("first", "Admin", "first name")
	lastName := flag.String("last", "User", "last name")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: add_user -email <email> -password <password> [-first <name>] [-last <name>]")
		return
	}

	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}
	defer db.Close()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		return
	}

	_, err = db.Exec(`INSERT INTO users (email, password, first_name, last_name, block, lot, role, is_approved, is_active, created_at, updated_at)
					  VALUES ($1, $2, $3, $4, '', '', 'administrator', true, true, NOW(), NOW())`,
		*email, hashed, *firstName, *lastName)
	if err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		return
	}

	fmt.Printf("Administrator created successfully: %s %s (%s)\n", *firstName, *lastName, *email)
}
