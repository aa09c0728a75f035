// Package responder turns free-text patient input into a canned
// guidance message. Matching is deterministic: rules are an ordered
// table and the first rule with any keyword present in the lowercased
// input wins, so priority lives in data rather than control flow.
package responder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shifahealth/clinic-portal/internal/model"
)

// Rule pairs trigger keywords with a response template. Render receives
// the live doctor snapshot so responses can quote current numbers.
type Rule struct {
	Name     string
	Keywords []string
	Render   func(doctors []model.Doctor) string
}

func static(text string) func([]model.Doctor) string {
	return func([]model.Doctor) string { return text }
}

// Rules in priority order, highest first. Emergencies outrank
// everything, so "I have an emergency and need an appointment" gets
// the emergency response, not the booking one.
var Rules = []Rule{
	{
		Name:     "emergency",
		Keywords: []string{"emergency", "urgent", "help"},
		Render: static(`🚨 For medical emergencies, please:

1. Call emergency services: 911 or 1122
2. Visit our emergency department immediately
3. Contact our 24/7 hotline: +92-21-1234567

If this is not life-threatening, I can help you find appropriate care. What symptoms are you experiencing?`),
	},
	{
		Name:     "appointment",
		Keywords: []string{"appointment", "book", "schedule"},
		Render: static(`📅 I'd be happy to help you book an appointment!

You can:
• Browse available doctors by specialty
• Check doctor availability and ratings
• Book instantly with confirmation

Would you like me to show you our doctor directory? What type of specialist are you looking for?`),
	},
	{
		Name:     "doctors",
		Keywords: []string{"doctor", "specialist"},
		Render:   doctorDirectory,
	},
	{
		Name:     "symptoms",
		Keywords: []string{"pain", "fever", "sick", "headache", "cough"},
		Render: static(`🩺 I understand you're experiencing symptoms. While I can provide general information, it's important to consult with a healthcare professional for proper diagnosis.

Based on your symptoms, you may want to consider:
• Booking a consultation with a general physician
• If severe: Visit our emergency department
• For follow-up: Schedule with your regular doctor

Would you like me to help you book an appointment with one of our doctors?`),
	},
	{
		Name:     "hospital",
		Keywords: []string{"hospital", "location", "address"},
		Render: static(`🏥 Shifa Hospital Information:

📍 Location: Main Campus, Healthcare District
🕒 Operating Hours: 24/7 Emergency, 8 AM - 8 PM General
📞 Main Line: +92-21-1234567
🆘 Emergency: 911 or 1122

Departments:
• Emergency Medicine
• Cardiology
• Orthopedics
• Dermatology
• Neurology
• And many more...

Do you need directions or information about a specific department?`),
	},
	{
		Name:     "medication",
		Keywords: []string{"medication", "medicine", "prescription"},
		Render: static(`💊 For medication-related queries:

⚠️ Important: Never stop or change medications without consulting your doctor.

I can help you:
• Find information about your prescribed medications
• Set up appointment reminders
• Connect you with your prescribing physician

For specific medication questions, please consult with your doctor or our pharmacy team. Would you like me to help you schedule a consultation?`),
	},
	{
		Name:     "greeting",
		Keywords: []string{"hello", "hi", "hey"},
		Render: static(`Hello! I'm here to assist you with your healthcare needs. How can I help you today?

Popular options:
• Book an appointment
• Find a doctor
• Hospital information
• Health questions`),
	},
}

const fallback = `I'm here to help with your healthcare needs. I can assist you with:

🩺 Medical consultations and appointments
🏥 Hospital information and services
👨‍⚕️ Finding the right specialist
🚨 Emergency guidance
💊 General health information

Please let me know what specific information you're looking for, or feel free to ask any health-related question!`

func doctorDirectory(doctors []model.Doctor) string {
	available := 0
	for _, d := range doctors {
		if d.Status == model.DoctorStatusAvailable {
			available++
		}
	}

	lines := make([]string, 0, 3)
	for _, d := range doctors {
		if len(lines) == 3 {
			break
		}
		rating := strconv.FormatFloat(d.Rating, 'f', -1, 64)
		lines = append(lines, fmt.Sprintf("• Dr. %s - %s (%s⭐)", d.Name, d.Specialization, rating))
	}

	return fmt.Sprintf(`👨‍⚕️ We have %d expert doctors across various specializations:

%s

%d doctors are currently available for appointments. Would you like to see the full directory or search for a specific specialty?`,
		len(doctors), strings.Join(lines, "\n"), available)
}

// Respond maps input to exactly one response string. It is total:
// empty or unmatched input yields the fallback, and it never fails.
func Respond(text string, doctors []model.Doctor) string {
	input := strings.ToLower(text)
	for _, rule := range Rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(input, keyword) {
				return rule.Render(doctors)
			}
		}
	}
	return fallback
}

// Fallback returns the no-match response, exported for callers that
// want to present it as a default.
func Fallback() string { return fallback }
