package quiz

// DefaultBank returns the DevLLMOps methodology question set.
func DefaultBank() *Bank {
	return MustNewBank(defaultQuestions)
}

var defaultQuestions = []Question{
	{
		ID:   1,
		Text: "What does DevLLMOps replace in software development?",
		Options: []string{
			"The traditional SDLC with a tight intent-agent-observe loop",
			"Only the testing phase of development",
			"The programming language used by the team",
			"Just the deployment pipeline",
		},
		CorrectIndex: 0,
		Explanation:  "DevLLMOps collapses the entire SDLC (Requirements > Design > Code > Test > Review > Deploy > Monitor) into a tight loop: Intent > Agent > Build+Test+Deploy > Observe.",
	},
	{
		ID:   2,
		Text: "What is the most important file for AI agent output quality?",
		Options: []string{
			"package.json",
			"Dockerfile",
			"CLAUDE.md (or equivalent agent context file)",
			".gitignore",
		},
		CorrectIndex: 2,
		Explanation:  "CLAUDE.md provides architecture context, conventions, and constraints to the AI agent. The quality of agent output is directly proportional to the quality of context you provide.",
	},
	{
		ID:   3,
		Text: "Which role evolved from DevOps/SRE in the DevLLMOps methodology?",
		Options: []string{
			"Context Engineer",
			"Product Architect",
			"AI Ops Lead",
			"Quality Sentinel",
		},
		CorrectIndex: 3,
		Explanation:  "The Quality Sentinel inherits the observability, incident response, and security hardening responsibilities from DevOps/SRE. Infrastructure-as-code writing is now handled by agents.",
	},
	{
		ID:   4,
		Text: "What is the primary safety mechanism when agents ship faster than humans can review?",
		Options: []string{
			"Manual code review on every PR",
			"Sprint retrospectives",
			"Observability and monitoring",
			"Story point estimation",
		},
		CorrectIndex: 2,
		Explanation:  "Monitoring is the last stage standing from the traditional SDLC. It becomes the foundation everything else rests on -- the primary safety net when every other safeguard has been absorbed by automation.",
	},
	{
		ID:   5,
		Text: "What replaces sprint planning in DevLLMOps?",
		Options: []string{
			"Longer sprints (monthly instead of bi-weekly)",
			"Continuous intent-based flow with GitHub Issues as context stores",
			"Daily planning meetings with the AI agent",
			"Quarterly roadmap reviews only",
		},
		CorrectIndex: 1,
		Explanation:  "Work is continuous in DevLLMOps. GitHub Issues become intent documents (context stores for agents), not task trackers. There are no sprints, no story points.",
	},
	{
		ID:   6,
		Text: "What is the purpose of TEAM.md in a DevLLMOps project?",
		Options: []string{
			"To list the project's dependencies",
			"To document the project's API endpoints",
			"To tell AI agents who to tag in PRs and issues based on review scope",
			"To track team velocity metrics",
		},
		CorrectIndex: 2,
		Explanation:  "TEAM.md is a machine-readable team roster that maps roles and GitHub handles to review scopes. Agents use it to route PRs to the right reviewer automatically.",
	},
	{
		ID:   7,
		Text: "What is the key skill in the AI-native development era?",
		Options: []string{
			"Typing speed",
			"Memorizing API documentation",
			"Context engineering",
			"Writing unit tests manually",
		},
		CorrectIndex: 2,
		Explanation:  "Context engineering is the ability to give an agent exactly the right information to produce correct output. The quality of what you build is directly proportional to the quality of context.",
	},
	{
		ID:   8,
		Text: "When should humans review AI-generated code in DevLLMOps?",
		Options: []string{
			"On every single PR, as always",
			"Never -- agents handle everything",
			"Only for security-critical changes, novel architecture, and unresolvable conflicts",
			"Only on Fridays",
		},
		CorrectIndex: 2,
		Explanation:  "Human review becomes exception-based. It's triggered only for security-critical paths (auth, payments, infra), novel architectural decisions, or when automated verification can't resolve a conflict.",
	},
	{
		ID:   9,
		Text: "What git strategy does DevLLMOps use (per OCPA specs)?",
		Options: []string{
			"GitFlow with develop, feature, release, and hotfix branches",
			"Trunk-based development with main, release, and short-lived feature branches",
			"Single main branch with no other branches",
			"One branch per developer",
		},
		CorrectIndex: 1,
		Explanation:  "DevLLMOps follows OCPA's flexible flow: main (staging), release (production), and short-lived feature branches. Squash merges keep history clean. Feature branches should live hours, not days.",
	},
	{
		ID:   10,
		Text: "What role is responsible for managing AI token costs in a large team?",
		Options: []string{
			"Product Architect",
			"Context Engineer",
			"Quality Sentinel",
			"AI Ops Lead",
		},
		CorrectIndex: 3,
		Explanation:  "The AI Ops Lead is a new role for large teams (5+ Context Engineers or $5K+/month AI costs). They manage token budgets, model selection strategy, and agent orchestration pipelines.",
	},
}
