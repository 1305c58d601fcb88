package rules

// Default returns the built-in rule set tuned for pre-launch and market
// validation signals. Trigger matching is case-insensitive substring
// containment; the company blacklist is the only whole-word table.
func Default() Set {
	return Set{
		SignalRules: []CategoryRule{
			{Category: "Pain complaint", Triggers: []string{
				"frustrated", "struggling", "stuck", "pain point", "this sucks", "problem",
			}},
			{Category: "Tool dissatisfaction", Triggers: []string{
				"hate", "too expensive", "buggy", "switching from", "alternatives to", "replace",
			}},
			{Category: "Active buying search", Triggers: []string{
				"looking for", "recommend", "any tool", "need software", "what should i use",
			}},
			{Category: "Workflow inefficiency", Triggers: []string{
				"manual", "time consuming", "spreadsheet", "bottleneck", "inefficient",
			}},
			{Category: "Trend observation", Triggers: []string{
				"seeing more", "trend", "everyone is", "market is", "shifting",
			}},
			{Category: "Hiring signal", Triggers: []string{
				"hiring", "looking for contractor", "need an sdr", "need sales help",
			}},
			{Category: "Revenue struggle", Triggers: []string{
				"no leads", "pipeline is dry", "no revenue", "can't close", "low conversion",
			}},
			{Category: "Scaling issue", Triggers: []string{
				"can't scale", "breaking at scale", "too many leads", "follow up is hard",
			}},
			{Category: "Operational bottleneck", Triggers: []string{
				"process is broken", "ops issue", "handoff", "crm mess",
			}},
		},
		ICPRules: []CategoryRule{
			{Category: "Founder", Triggers: []string{
				"founder", "startup", "cofounder", "bootstrapped", "prelaunch", "mvp",
			}},
			{Category: "SaaS company", Triggers: []string{
				"saas", "b2b software", "trial users", "churn",
			}},
			{Category: "Agency", Triggers: []string{
				"agency", "clients", "retainer", "freelance studio",
			}},
			{Category: "Consultant", Triggers: []string{
				"consultant", "advisor", "fractional",
			}},
			{Category: "Ecommerce", Triggers: []string{
				"shopify", "ecommerce", "store", "dtc", "amazon",
			}},
			{Category: "Enterprise", Triggers: []string{
				"enterprise", "procurement", "security review", "soc2",
			}},
		},
		HighIntentTerms: []string{
			"need", "asap", "urgent", "help", "recommend",
			"looking for", "anyone know", "prelaunch", "validate",
		},
		UrgencyTerms: []string{
			"asap", "urgent", "immediately", "today", "now", "this week",
		},
		ValidationKeywords: []string{
			"prelaunch", "beta users", "validating", "looking for feedback",
			"launching soon", "problem with", "need a better", "any tool for",
			"manual process", "where do i find",
		},
		TierHighKeywords: []string{
			"pre-launch", "launching soon", "validating an idea",
			"testing product-market fit", "finding target customers",
			"market research for launch", "looking for beta testers",
			"early adopters", "mvp launch", "soft launch", "coming soon",
		},
		TierMediumKeywords: []string{
			"looking for growth opportunities", "exploring new markets",
			"analyzing competitors", "potential customer segments",
			"industry trends", "market validation", "customer discovery",
			"pilot program",
		},
		CompanyBlacklist: []string{
			"linkedin", "twitter", "facebook", "instagram", "google", "amazon",
			"market", "customer", "product", "launch", "idea", "fit", "research",
			"trends", "opportunities", "segments", "competitors", "soon", "tbd",
		},
		Weights: Weights{
			High:   100,
			Medium: 50,
			Other:  20,
		},
		Thresholds: Thresholds{
			High:   70,
			Medium: 50,
		},
		OutreachPitch: "Genesis builds market snapshots + outbound-ready lead insights for prelaunch teams. Happy to share a focused snapshot from your category.",
	}
}
