package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "github.com/deveshjagdale07/ConnectHire/internal/model"
	"github.com/deveshjagdale07/ConnectHire/internal/utilities"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported test users & profiles
var (
	TestAdminUser    m.User
	TestUserSeeker1  m.User
	TestUserSeeker2  m.User
	TestUserCompany1 m.User
	TestUserCompany2 m.User
	TestSeeker1      m.JobSeekerProfile
	TestSeeker2      m.JobSeekerProfile
	TestCompany1     m.CompanyProfile
	TestCompany2     m.CompanyProfile

	// Shared plain password of every seeded user
	TestSeedPassword = "SeedPass123!"

	// Exported seeded job listings
	TestListing1 m.JobListing
	TestListing2 m.JobListing
	TestListing3 m.JobListing
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts sample seeker and company users (2 each) if empty.
func seedTestData(db *DBinstanceStruct) error {
	var userCount int64
	if err := db.Model(&m.User{}).Count(&userCount).Error; err != nil {
		return err
	}

	if userCount > 0 {
		return loadTestData(db)
	}

	userSpecs := []struct {
		email string
		role  string
	}{
		{"seeker1@example.com", m.RoleJobSeeker},
		{"seeker2@example.com", m.RoleJobSeeker},
		{"company1@example.com", m.RoleCompany},
		{"company2@example.com", m.RoleCompany},
		{"admin@example.com", m.RoleAdmin},
	}

	// Pre-hash shared password for all seeded users
	hashedPwd, errHash := utilities.HashPassword(TestSeedPassword)
	if errHash != nil {
		return errHash
	}

	users := make([]m.User, 0, len(userSpecs))
	for _, s := range userSpecs {
		users = append(users, m.User{
			ID:       uuid.New(),
			Email:    s.email,
			Role:     s.role,
			Password: hashedPwd,
		})
	}

	if err := db.Create(&users).Error; err != nil {
		return err
	}

	// Map created users to exported variables
	for _, u := range users {
		switch u.Email {
		case "seeker1@example.com":
			TestUserSeeker1 = u
		case "seeker2@example.com":
			TestUserSeeker2 = u
		case "company1@example.com":
			TestUserCompany1 = u
		case "company2@example.com":
			TestUserCompany2 = u
		case "admin@example.com":
			TestAdminUser = u
		}
	}

	seekerProfiles := []m.JobSeekerProfile{
		{
			UserID: TestUserSeeker1.ID,
			EditableSeekerInfo: m.EditableSeekerInfo{
				Name:            "Alice Nair",
				Role:            "Backend Developer",
				Skills:          "go,sql,docker",
				WorkPreferences: "Remote",
				Location:        "Pune",
			},
		},
		{
			UserID: TestUserSeeker2.ID,
			EditableSeekerInfo: m.EditableSeekerInfo{
				Name:   "Bob Verma",
				Role:   "Frontend Developer",
				Skills: "react,typescript",
			},
		},
	}
	if err := db.Create(&seekerProfiles).Error; err != nil {
		return err
	}

	companyProfiles := []m.CompanyProfile{
		{
			UserID: TestUserCompany1.ID,
			EditableCompanyInfo: m.EditableCompanyInfo{
				CompanyName:     "TechNova",
				FoundingDetails: "Founded 2016 in Pune",
				About:           "Platform engineering services",
			},
		},
		{
			UserID: TestUserCompany2.ID,
			EditableCompanyInfo: m.EditableCompanyInfo{
				CompanyName:     "DataForge",
				FoundingDetails: "Founded 2019 in Bengaluru",
				About:           "Data analytics consulting",
			},
		},
	}
	if err := db.Create(&companyProfiles).Error; err != nil {
		return err
	}

	TestSeeker1 = seekerProfiles[0]
	TestSeeker2 = seekerProfiles[1]
	TestCompany1 = companyProfiles[0]
	TestCompany2 = companyProfiles[1]

	listings := []m.JobListing{
		{
			CompanyID: TestCompany1.UserID,
			EditableListingInfo: m.EditableListingInfo{
				Role:         "Backend Engineer",
				Compensation: "15000 INR",
				JobType:      "internship",
				Duration:     "6 months",
				Location:     "Remote",
				Description:  "Work on Go services and the database layer.",
			},
		},
		{
			CompanyID: TestCompany1.UserID,
			EditableListingInfo: m.EditableListingInfo{
				Role:         "Frontend Developer",
				Compensation: "900000 INR",
				JobType:      "full_time",
				Duration:     "permanent",
				Location:     "Remote",
				Description:  "Build the component library in React.",
			},
		},
		{
			CompanyID: TestCompany2.UserID,
			EditableListingInfo: m.EditableListingInfo{
				Role:         "Data Analyst",
				Compensation: "13000 INR",
				JobType:      "internship",
				Duration:     "3 months",
				Location:     "Pune",
				Description:  "Support data cleansing and dashboards.",
			},
		},
	}
	if err := db.Create(&listings).Error; err != nil {
		return err
	}
	TestListing1 = listings[0]
	TestListing2 = listings[1]
	TestListing3 = listings[2]

	return nil
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	var users []m.User
	if err := db.Where("email IN ?", []string{
		"seeker1@example.com", "seeker2@example.com",
		"company1@example.com", "company2@example.com", "admin@example.com",
	}).Find(&users).Error; err != nil {
		return err
	}
	for _, u := range users {
		switch u.Email {
		case "seeker1@example.com":
			TestUserSeeker1 = u
		case "seeker2@example.com":
			TestUserSeeker2 = u
		case "company1@example.com":
			TestUserCompany1 = u
		case "company2@example.com":
			TestUserCompany2 = u
		case "admin@example.com":
			TestAdminUser = u
		}
	}

	_ = db.First(&TestSeeker1, "user_id = ?", TestUserSeeker1.ID).Error
	_ = db.First(&TestSeeker2, "user_id = ?", TestUserSeeker2.ID).Error
	_ = db.First(&TestCompany1, "user_id = ?", TestUserCompany1.ID).Error
	_ = db.First(&TestCompany2, "user_id = ?", TestUserCompany2.ID).Error

	var listings []m.JobListing
	if err := db.Order("id ASC").Limit(3).Find(&listings).Error; err == nil {
		if len(listings) > 0 {
			TestListing1 = listings[0]
		}
		if len(listings) > 1 {
			TestListing2 = listings[1]
		}
		if len(listings) > 2 {
			TestListing3 = listings[2]
		}
	}

	return nil
}
