package sessionsrv

import (
	"fmt"

	"github.com/Abraxas-365/counsel/pkg/kernel"
)

const degradedGenerativeMessage = "The generative assistant is unavailable right now, so I couldn't complete that analysis. Please try again in a moment."

func skillListPrompt(label kernel.DomainLabel) string {
	return fmt.Sprintf("List the top 15 most important technical skills and soft skills for a '%s' role, based on current industry standards. Format as a single comma-separated string. Example: Python, SQL, Communication, Teamwork, Project Management.", label)
}

func dayInLifePrompt(label kernel.DomainLabel) string {
	return fmt.Sprintf("Create an engaging, first-person narrative of a 'day in the life' of a %s. Make it realistic, covering daily tasks, challenges, and rewarding moments. Write it in about 150 words.", label)
}

func interviewQuestionPrompt(label kernel.DomainLabel) string {
	return fmt.Sprintf("Generate one common behavioral or technical interview question for a %s role.", label)
}
