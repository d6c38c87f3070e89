package roles

import "fmt"

// Requirements is the keyword table a role is scored against.
// All entries are lower-case.
type Requirements struct {
	MandatorySkills    []string `json:"mandatory_skills" yaml:"mandatory_skills"`
	OptionalSkills     []string `json:"optional_skills" yaml:"optional_skills"`
	ProjectIndicators  []string `json:"project_indicators" yaml:"project_indicators"`
	ExperienceKeywords []string `json:"experience_keywords" yaml:"experience_keywords"`
}

// table is built once at init; a role without an entry panics there.
var table = func() map[ID]Requirements {
	m := make(map[ID]Requirements, len(catalogue))
	for _, info := range catalogue {
		m[info.ID] = requirementsFor(info.ID)
	}
	return m
}()

// For returns the requirements for id. The second result is false only for
// IDs outside the closed set.
func For(id ID) (Requirements, bool) {
	r, ok := table[id]
	return r, ok
}

// MustFor is like For but panics on an unknown id.
func MustFor(id ID) Requirements {
	r, ok := table[id]
	if !ok {
		panic(fmt.Sprintf("roles: no requirements for %q", id))
	}
	return r
}

func requirementsFor(id ID) Requirements {
	switch id {
	case FrontendDeveloper:
		return Requirements{
			MandatorySkills:    []string{"html", "css", "javascript", "react", "responsive"},
			OptionalSkills:     []string{"typescript", "vue", "angular", "tailwind", "sass", "webpack", "git"},
			ProjectIndicators:  []string{"website", "web app", "ui", "frontend", "landing page", "dashboard"},
			ExperienceKeywords: []string{"developed", "built", "designed", "implemented", "created"},
		}
	case FullstackDeveloper:
		return Requirements{
			MandatorySkills:    []string{"javascript", "api", "database", "frontend", "backend"},
			OptionalSkills:     []string{"react", "node", "express", "typescript", "sql", "mongodb", "docker", "git", "rest"},
			ProjectIndicators:  []string{"web app", "full stack", "api", "dashboard", "crud", "deployed"},
			ExperienceKeywords: []string{"developed", "built", "implemented", "deployed", "integrated"},
		}
	case BackendFullstack:
		return Requirements{
			MandatorySkills:    []string{"api", "database", "server", "backend"},
			OptionalSkills:     []string{"node", "python", "java", "sql", "mongodb", "express", "django", "rest", "graphql"},
			ProjectIndicators:  []string{"api", "server", "backend", "database", "microservice", "crud"},
			ExperienceKeywords: []string{"architected", "implemented", "deployed", "integrated", "scaled"},
		}
	case DataAnalyst:
		return Requirements{
			MandatorySkills:    []string{"sql", "excel", "data", "analysis"},
			OptionalSkills:     []string{"python", "tableau", "power bi", "statistics", "visualization", "pandas", "r"},
			ProjectIndicators:  []string{"analysis", "dashboard", "report", "visualization", "insights", "metrics"},
			ExperienceKeywords: []string{"analyzed", "visualized", "reported", "identified", "improved"},
		}
	case AIMLIntern:
		return Requirements{
			MandatorySkills:    []string{"python", "machine learning", "data"},
			OptionalSkills:     []string{"tensorflow", "pytorch", "sklearn", "deep learning", "nlp", "neural network", "pandas", "numpy"},
			ProjectIndicators:  []string{"model", "prediction", "classification", "training", "dataset", "accuracy"},
			ExperienceKeywords: []string{"trained", "developed", "implemented", "achieved", "improved accuracy"},
		}
	case CloudDevOps:
		return Requirements{
			MandatorySkills:    []string{"cloud", "linux", "docker"},
			OptionalSkills:     []string{"aws", "azure", "gcp", "kubernetes", "ci/cd", "terraform", "jenkins", "ansible"},
			ProjectIndicators:  []string{"deployment", "pipeline", "infrastructure", "automation", "container"},
			ExperienceKeywords: []string{"deployed", "automated", "configured", "managed", "optimized"},
		}
	case ProductManager:
		return Requirements{
			MandatorySkills:    []string{"product", "roadmap", "stakeholder"},
			OptionalSkills:     []string{"agile", "scrum", "jira", "analytics", "user research", "a/b testing"},
			ProjectIndicators:  []string{"launched", "product", "feature", "user", "growth", "metrics"},
			ExperienceKeywords: []string{"led", "managed", "launched", "defined", "prioritized"},
		}
	case UIUXDesigner:
		return Requirements{
			MandatorySkills:    []string{"design", "user experience", "prototype"},
			OptionalSkills:     []string{"figma", "sketch", "adobe xd", "user research", "wireframe", "usability"},
			ProjectIndicators:  []string{"design", "prototype", "wireframe", "user flow", "redesign"},
			ExperienceKeywords: []string{"designed", "created", "researched", "improved", "tested"},
		}
	case Cybersecurity:
		return Requirements{
			MandatorySkills:    []string{"security", "vulnerability", "network"},
			OptionalSkills:     []string{"penetration testing", "firewall", "encryption", "compliance", "siem", "nist"},
			ProjectIndicators:  []string{"audit", "security", "vulnerability", "penetration", "compliance"},
			ExperienceKeywords: []string{"secured", "audited", "identified", "remediated", "implemented"},
		}
	case QAEngineer:
		return Requirements{
			MandatorySkills:    []string{"testing", "quality", "automation"},
			OptionalSkills:     []string{"selenium", "jest", "cypress", "jira", "test cases", "regression"},
			ProjectIndicators:  []string{"test", "automation", "bug", "quality", "coverage"},
			ExperienceKeywords: []string{"tested", "automated", "identified", "verified", "improved quality"},
		}
	case MobileDeveloper:
		return Requirements{
			MandatorySkills:    []string{"mobile", "app", "ios", "android"},
			OptionalSkills:     []string{"react native", "flutter", "swift", "kotlin", "java"},
			ProjectIndicators:  []string{"app", "mobile", "ios", "android", "playstore", "appstore"},
			ExperienceKeywords: []string{"developed", "published", "built", "integrated", "optimized"},
		}
	case DatabaseAdmin:
		return Requirements{
			MandatorySkills:    []string{"database", "sql", "performance"},
			OptionalSkills:     []string{"postgresql", "mysql", "mongodb", "oracle", "backup", "replication"},
			ProjectIndicators:  []string{"database", "migration", "optimization", "backup", "schema"},
			ExperienceKeywords: []string{"managed", "optimized", "migrated", "designed", "maintained"},
		}
	case TechnicalWriter:
		return Requirements{
			MandatorySkills:    []string{"documentation", "technical writing", "api"},
			OptionalSkills:     []string{"markdown", "confluence", "git", "swagger", "user guide"},
			ProjectIndicators:  []string{"documentation", "guide", "api docs", "readme", "tutorial"},
			ExperienceKeywords: []string{"documented", "wrote", "created", "maintained", "reviewed"},
		}
	case SystemsAnalyst:
		return Requirements{
			MandatorySkills:    []string{"requirements", "analysis", "system design"},
			OptionalSkills:     []string{"uml", "sql", "business analysis", "workflow", "stakeholder"},
			ProjectIndicators:  []string{"requirements", "analysis", "system", "workflow", "specification"},
			ExperienceKeywords: []string{"analyzed", "designed", "gathered", "defined", "documented"},
		}
	case NetworkEngineer:
		return Requirements{
			MandatorySkills:    []string{"network", "tcp/ip", "routing"},
			OptionalSkills:     []string{"cisco", "firewall", "vpn", "dns", "load balancer", "monitoring"},
			ProjectIndicators:  []string{"network", "infrastructure", "migration", "monitoring", "security"},
			ExperienceKeywords: []string{"configured", "maintained", "troubleshot", "designed", "implemented"},
		}
	case BlockchainDeveloper:
		return Requirements{
			MandatorySkills:    []string{"blockchain", "smart contract", "web3"},
			OptionalSkills:     []string{"solidity", "ethereum", "defi", "nft", "cryptography"},
			ProjectIndicators:  []string{"smart contract", "dapp", "token", "blockchain", "defi"},
			ExperienceKeywords: []string{"developed", "deployed", "audited", "integrated", "built"},
		}
	case GameDeveloper:
		return Requirements{
			MandatorySkills:    []string{"game", "development", "programming"},
			OptionalSkills:     []string{"unity", "unreal", "c++", "c#", "game design", "3d"},
			ProjectIndicators:  []string{"game", "gameplay", "engine", "multiplayer", "mobile game"},
			ExperienceKeywords: []string{"developed", "designed", "implemented", "optimized", "published"},
		}
	case EmbeddedSystems:
		return Requirements{
			MandatorySkills:    []string{"embedded", "microcontroller", "firmware"},
			OptionalSkills:     []string{"c", "c++", "rtos", "iot", "arduino", "raspberry pi"},
			ProjectIndicators:  []string{"firmware", "embedded", "iot", "sensor", "microcontroller"},
			ExperienceKeywords: []string{"developed", "programmed", "debugged", "optimized", "integrated"},
		}
	default:
		panic(fmt.Sprintf("roles: missing requirements entry for %q", id))
	}
}
