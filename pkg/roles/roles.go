// Package roles defines the closed set of job roles a resume can be scored
// against, together with the static keyword requirements for each role.
package roles

import (
	"fmt"
	"strings"
)

// ID identifies a job role.
type ID string

const (
	FrontendDeveloper   ID = "frontend-developer"
	FullstackDeveloper  ID = "fullstack-developer"
	BackendFullstack    ID = "backend-fullstack"
	DataAnalyst         ID = "data-analyst"
	AIMLIntern          ID = "ai-ml-intern"
	CloudDevOps         ID = "cloud-devops"
	ProductManager      ID = "product-manager"
	UIUXDesigner        ID = "ui-ux-designer"
	Cybersecurity       ID = "cybersecurity"
	QAEngineer          ID = "qa-engineer"
	MobileDeveloper     ID = "mobile-developer"
	DatabaseAdmin       ID = "database-admin"
	TechnicalWriter     ID = "technical-writer"
	SystemsAnalyst      ID = "systems-analyst"
	NetworkEngineer     ID = "network-engineer"
	BlockchainDeveloper ID = "blockchain-developer"
	GameDeveloper       ID = "game-developer"
	EmbeddedSystems     ID = "embedded-systems"
)

// Mode selects how strictly a role is treated. Extended roles have a
// thinner keyword table, so their results carry less confidence.
type Mode string

const (
	ModeCore     Mode = "core"
	ModeExtended Mode = "extended"
)

// Info is the display metadata for a role.
type Info struct {
	ID          ID     `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	IsCore      bool   `json:"is_core"`
}

// Mode returns the role's natural mode.
func (i Info) Mode() Mode {
	if i.IsCore {
		return ModeCore
	}
	return ModeExtended
}

var catalogue = []Info{
	{FrontendDeveloper, "Frontend Developer", "HTML, CSS, JavaScript, React, responsive UI", true},
	{FullstackDeveloper, "Full Stack Developer", "Frontend and backend, APIs, databases, deployment", true},
	{BackendFullstack, "Backend / Full Stack", "APIs, databases, server-side logic", true},
	{DataAnalyst, "Data Analyst", "SQL, Excel, analysis, visualization", true},
	{AIMLIntern, "AI/ML Intern", "Python, machine learning, model training", true},
	{CloudDevOps, "Cloud / DevOps", "Cloud platforms, Linux, Docker, CI/CD", true},
	{ProductManager, "Product Manager", "Roadmaps, stakeholders, product strategy", false},
	{UIUXDesigner, "UI/UX Designer", "User experience, prototyping, design tools", false},
	{Cybersecurity, "Cybersecurity Analyst", "Security, vulnerabilities, network defense", false},
	{QAEngineer, "QA Engineer", "Testing, quality assurance, automation", false},
	{MobileDeveloper, "Mobile Developer", "iOS, Android, cross-platform apps", false},
	{DatabaseAdmin, "Database Administrator", "Database management, performance, backups", false},
	{TechnicalWriter, "Technical Writer", "Documentation, API docs, user guides", false},
	{SystemsAnalyst, "Systems Analyst", "Requirements, system design, analysis", false},
	{NetworkEngineer, "Network Engineer", "Networking, routing, infrastructure", false},
	{BlockchainDeveloper, "Blockchain Developer", "Smart contracts, Web3, decentralized apps", false},
	{GameDeveloper, "Game Developer", "Game engines, gameplay programming", false},
	{EmbeddedSystems, "Embedded Systems Engineer", "Firmware, microcontrollers, IoT", false},
}

var byID = func() map[ID]Info {
	m := make(map[ID]Info, len(catalogue))
	for _, info := range catalogue {
		m[info.ID] = info
	}
	return m
}()

// All returns every role in display order.
func All() []Info {
	out := make([]Info, len(catalogue))
	copy(out, catalogue)
	return out
}

// Core returns the core roles.
func Core() []Info { return filter(true) }

// Extended returns the extended roles.
func Extended() []Info { return filter(false) }

func filter(core bool) []Info {
	var out []Info
	for _, info := range catalogue {
		if info.IsCore == core {
			out = append(out, info)
		}
	}
	return out
}

// Lookup returns the metadata for id.
func Lookup(id ID) (Info, bool) {
	info, ok := byID[id]
	return info, ok
}

// Parse converts a user-supplied string to a role ID.
func Parse(s string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := byID[id]; !ok {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return id, nil
}

// ParseMode converts a user-supplied string to a Mode. An empty string
// yields the natural mode of role.
func ParseMode(s string, role ID) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		info, ok := byID[role]
		if !ok {
			return "", fmt.Errorf("unknown role %q", role)
		}
		return info.Mode(), nil
	case ModeCore:
		return ModeCore, nil
	case ModeExtended:
		return ModeExtended, nil
	default:
		return "", fmt.Errorf("unknown role mode %q (want core or extended)", s)
	}
}
