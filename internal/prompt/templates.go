package prompt

import "strings"

const baseInstructions = `You are an expert developer writing git commit messages.
Your task is to analyze the git diff and generate a clear, accurate commit message.

Rules:
- Focus on WHAT changed and WHY (if apparent from context)
- Be specific but concise
- Output ONLY the commit message as plain text
- Do not include any explanation
- Do not use markdown or code blocks`

// ConventionalPrompt is the system prompt for StyleConventional and the
// fallback for unknown styles.
const ConventionalPrompt = baseInstructions + `

Use the Conventional Commits format strictly:
<type>(<scope>): <description>

[optional body]

Types (choose the most appropriate):
- feat: New feature or functionality
- fix: Bug fix
- docs: Documentation only changes
- style: Code style changes (formatting, semicolons, etc.)
- refactor: Code changes that neither fix bugs nor add features
- test: Adding or updating tests
- chore: Maintenance tasks (deps, build, config)

Rules for Conventional Commits:
- Scope is optional but helpful (e.g., auth, api, ui)
- Description must be lowercase, no period at end
- Keep subject line under 72 characters
- Use imperative mood ("add" not "added" or "adds")

Examples:
- feat(auth): add password reset functionality
- fix(api): handle nil pointer in user service
- docs: update README with installation steps
- refactor(db): optimize query performance with index`

const SimplePrompt = baseInstructions + `

Write a simple, single-line commit message.

Rules:
- Start with capital letter
- No period at the end
- Keep under 50 characters if possible, max 72
- Use imperative mood ("Add" not "Added")

Examples:
- Add user authentication
- Fix navigation bug on mobile
- Update dependencies`

const DetailedPrompt = baseInstructions + `

Write a detailed commit message with subject and body.

Format:
<subject line>

<body explaining what and why>

Rules:
- Subject: max 72 characters, imperative mood, no period
- Blank line between subject and body
- Body: wrap at 72 characters, explain what changed and why
- Focus on the motivation and context

Example:
Add rate limiting to API endpoints

Implement rate limiting using a token bucket algorithm to prevent
abuse and ensure fair usage across all API consumers. The limit is
set to 100 requests per minute per API key.`

// SystemPrompt returns the instructions for style. Unknown styles get the
// conventional template; the CLI rejects them before this point.
func SystemPrompt(style Style) string {
	switch style {
	case StyleSimple:
		return SimplePrompt
	case StyleDetailed:
		return DetailedPrompt
	default:
		return ConventionalPrompt
	}
}

// UserPrompt embeds diff in a fenced diff block and appends the developer's
// context note when one is given.
func UserPrompt(diff, context string) string {
	var b strings.Builder
	b.WriteString("Generate a commit message for these changes:\n\n")
	b.WriteString("```diff\n")
	b.WriteString(diff)
	b.WriteString("\n```")

	if context = strings.TrimSpace(context); context != "" {
		b.WriteString("\n\nContext from the developer: ")
		b.WriteString(context)
	}

	return b.String()
}
