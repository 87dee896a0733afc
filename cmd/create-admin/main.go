// Command create-admin interactively seeds an admin account.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/deveshjagdale07/ConnectHire/internal/database"
	"github.com/deveshjagdale07/ConnectHire/internal/model"
	"github.com/deveshjagdale07/ConnectHire/internal/utilities"
)

func main() {

	fmt.Println("Generating admin account")

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Enter email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)

	fmt.Print("Enter password: ")
	password1, _ := reader.ReadString('\n')
	password1 = strings.TrimSpace(password1)

	fmt.Print("Confirm password: ")
	password2, _ := reader.ReadString('\n')
	password2 = strings.TrimSpace(password2)

	if password1 != password2 {
		fmt.Println("Passwords do not match.")
		os.Exit(1)
	}

	db, err := database.GetMainDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	var count int64
	db.Model(&model.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		fmt.Println("Email already taken")
		os.Exit(1)
	}

	utilities.CreateAdmin(password1, email, db.DB)

	fmt.Println("Admin account created successfully!")
	fmt.Println("======================================")
	fmt.Printf("Email: %s\n", email)
	fmt.Println("======================================")
}
