package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/shifahealth/clinic-portal/internal/config"
	"github.com/shifahealth/clinic-portal/internal/export"
	"github.com/shifahealth/clinic-portal/internal/model"
	"github.com/shifahealth/clinic-portal/internal/repository"
	"github.com/shifahealth/clinic-portal/internal/seed"
	"github.com/shifahealth/clinic-portal/internal/session"
	appointmentService "github.com/shifahealth/clinic-portal/internal/service/appointment"
	chatService "github.com/shifahealth/clinic-portal/internal/service/chat"
	patientService "github.com/shifahealth/clinic-portal/internal/service/patient"
	"github.com/shifahealth/clinic-portal/internal/storage"
	apperrors "github.com/shifahealth/clinic-portal/pkg/errors"
	"github.com/shifahealth/clinic-portal/pkg/logger"
	"github.com/shifahealth/clinic-portal/pkg/metrics"
)

func main() {
	// Optional .env for local overrides.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	log := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Output:     os.Stderr,
	})

	m := metrics.NewMetrics("portal", "core")

	store, err := storage.Open(cfg.Store.Path, log, m)
	if err != nil {
		log.Fatal(err, "failed to open store")
	}
	defer store.Close()

	// Repositories
	patientRepo := repository.NewPatientRepository(store, log, m)
	doctorRepo := repository.NewDoctorRepository(store, log, m)
	appointmentRepo := repository.NewAppointmentRepository(store, log, m)
	chatRepo := repository.NewChatRepository(store, log, m)

	// Session and services
	sessions := session.NewManager(store, patientRepo, log)
	patientSvc := patientService.NewService(patientRepo, sessions, log)
	appointmentSvc := appointmentService.NewService(appointmentRepo, log)
	chatSvc := chatService.NewService(chatRepo, doctorRepo, log)
	exporter := export.NewExporter(patientRepo, doctorRepo, appointmentRepo, chatRepo)

	if cfg.Seed.Enabled {
		if _, err := seed.Run(seed.Repositories{
			Patients:     patientRepo,
			Doctors:      doctorRepo,
			Appointments: appointmentRepo,
			Chats:        chatRepo,
		}, log); err != nil {
			log.Fatal(err, "failed to seed demo data")
		}
	}

	app := &console{
		in:           bufio.NewScanner(os.Stdin),
		cfg:          cfg,
		patients:     patientSvc,
		appointments: appointmentSvc,
		chat:         chatSvc,
		doctors:      doctorRepo,
		exporter:     exporter,
	}
	app.run()
}

// console is the reference presentation collaborator: it gates every
// view on the current session, persists through the services, and
// renders whatever they return.
type console struct {
	in           *bufio.Scanner
	cfg          *config.Config
	patients     *patientService.Service
	appointments *appointmentService.Service
	chat         *chatService.Service
	doctors      *repository.DoctorRepository
	exporter     *export.Exporter
}

func (c *console) run() {
	patient, ok := c.patients.Current()
	if !ok {
		patient, ok = c.signIn()
		if !ok {
			return
		}
	}
	fmt.Printf("Signed in as %s <%s>\n\n", patient.Name, patient.Email)

	if welcome, added, err := c.chat.EnsureWelcome(patient); err == nil && added {
		fmt.Println(welcome.Message)
		fmt.Println()
	} else {
		for _, msg := range c.chat.History(patient.ID) {
			fmt.Printf("[%s] %s\n", msg.Type, msg.Message)
		}
	}

	fmt.Println("Type a message, or /doctors, /appointments, /export <file>, /signout, /quit.")
	for c.prompt() {
		line := strings.TrimSpace(c.in.Text())
		switch {
		case line == "":
			continue
		case line == "/quit":
			return
		case line == "/signout":
			if err := c.patients.SignOut(); err != nil {
				fmt.Println("sign-out failed:", err)
			}
			return
		case line == "/doctors":
			c.printDoctors()
		case line == "/appointments":
			c.printAppointments(patient)
		case strings.HasPrefix(line, "/export "):
			c.export(strings.TrimSpace(strings.TrimPrefix(line, "/export ")))
		default:
			c.send(patient, line)
		}
	}
}

func (c *console) prompt() bool {
	fmt.Print("> ")
	return c.in.Scan()
}

func (c *console) signIn() (model.Patient, bool) {
	fmt.Print("Email (blank to quit): ")
	if !c.in.Scan() {
		return model.Patient{}, false
	}
	email := strings.TrimSpace(c.in.Text())
	if email == "" {
		return model.Patient{}, false
	}

	patient, err := c.patients.SignIn(email)
	if err == nil {
		return patient, true
	}
	if !apperrors.IsCode(err, apperrors.ErrNotFound) {
		fmt.Println("sign-in failed:", err)
		return model.Patient{}, false
	}

	fmt.Println("No account found with this email. Let's register.")
	req := patientService.RegisterRequest{Email: email}
	req.Name = c.ask("Full name: ")
	req.Phone = c.ask("Phone: ")
	req.DateOfBirth = c.ask("Date of birth (YYYY-MM-DD): ")

	patient, err = c.patients.Register(req)
	if err != nil {
		fmt.Println("registration failed:", err)
		return model.Patient{}, false
	}
	fmt.Println("Registration successful.")
	return patient, true
}

func (c *console) ask(prompt string) string {
	fmt.Print(prompt)
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *console) send(patient model.Patient, text string) {
	_, bot, err := c.chat.Send(patient, text)
	if err != nil {
		fmt.Println("message failed:", err)
		return
	}

	// Cosmetic typing delay; the reply is already persisted.
	minDelay := c.cfg.Chat.TypingDelayMinMS
	spread := c.cfg.Chat.TypingDelayMaxMS - minDelay
	if spread < 0 {
		spread = 0
	}
	time.Sleep(time.Duration(minDelay+rand.Intn(spread+1)) * time.Millisecond)

	fmt.Println(bot.Message)
}

func (c *console) printDoctors() {
	for _, d := range c.doctors.All() {
		fmt.Printf("%s - %s, %d yrs, %.1f* (%s)\n", d.Name, d.Specialization, d.Experience, d.Rating, d.Status)
	}
}

func (c *console) printAppointments(patient model.Patient) {
	appts := c.appointments.ForPatient(patient.ID)
	if len(appts) == 0 {
		fmt.Println("No appointments.")
		return
	}
	for _, a := range appts {
		doctorName := "unknown"
		if d, ok := c.doctors.Find(a.DoctorID); ok {
			doctorName = d.Name
		}
		fmt.Printf("%s %s with %s - %s (%s)\n", a.Date, a.Time, doctorName, a.Type, a.Status)
	}
}

func (c *console) export(path string) {
	if path == "" {
		fmt.Println("usage: /export <file>")
		return
	}
	f, err := os.Create(path)
	if err != nil {
		fmt.Println("export failed:", err)
		return
	}
	defer f.Close()
	if err := c.exporter.WriteJSON(f); err != nil {
		fmt.Println("export failed:", err)
		return
	}
	fmt.Println("Exported to", path)
}
