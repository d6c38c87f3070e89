package scoring

import (
	"regexp"
	"sort"
	"strings"

	"github.com/resumate/resumate/pkg/roles"
)

// All patterns below run against lower-cased text unless noted.
var (
	projectLexiconRe    = regexp.MustCompile(`\b(?:project|portfolio|work|built|developed|created)`)
	experienceLexiconRe = regexp.MustCompile(`\b(?:experience|work|internship|intern|project|freelance|volunteer)`)

	quantificationRes = []*regexp.Regexp{
		regexp.MustCompile(`\d+(?:\.\d+)?\s*%`),
		regexp.MustCompile(`\d+[\d,]*\+?\s*(?:users?|customers?|clients?|downloads?|visitors?|students?)`),
		regexp.MustCompile(`\d+(?:\.\d+)?x\s*(?:faster|improvement|increase|speedup|more)`),
		regexp.MustCompile(`(?:reduced|increased|improved)[^\n]*?\d+`),
		regexp.MustCompile(`\$\s?\d+`),
		regexp.MustCompile(`\d+\+?\s*(?:projects|applications|apps|websites|clients|features)`),
	}

	techStackRe = regexp.MustCompile(`\busing\b|built with|tech stack`)
	linkRe      = regexp.MustCompile(`github\.com/|gitlab\.com/|live demo|portfolio:|\.vercel\.app|\.netlify\.app`)

	dateRes = []*regexp.Regexp{
		regexp.MustCompile(`\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}\b`),
		regexp.MustCompile(`\b(?:19|20)\d{2}\s*(?:-|–|—|to)\s*(?:(?:19|20)\d{2}|present|current)\b`),
		regexp.MustCompile(`\b\d{1,2}/\d{4}\b`),
		regexp.MustCompile(`\b(?:19|20)\d{2}\b`),
	}

	// orgAtRe needs case and runs on the raw text.
	orgAtRe    = regexp.MustCompile(`\bat\s+[A-Z][a-zA-Z]+`)
	orgLexicon = []string{"internship at", "company", "university"}

	educationRe     = regexp.MustCompile(`\b(?:education|university|college|degree|bachelor|master|b\.?tech|diploma|academic)\b`)
	skillsRe        = regexp.MustCompile(`\b(?:skills|technologies|tech stack|tools|competencies|proficiencies)\b`)
	experienceRe    = regexp.MustCompile(`\b(?:experience|employment|internship|work history)\b`)
	contactRe       = regexp.MustCompile(`[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}|\b(?:phone|email|contact|linkedin|github)\b`)
	phoneRe         = regexp.MustCompile(`(?:\+?\d{1,3}[-.\s]?)?\(?\d{2,4}\)?[-.\s]?\d{3,4}[-.\s]?\d{3,4}`)
	summaryRe       = regexp.MustCompile(`\b(?:objective|summary|profile|about me)\b`)
	certificationRe = regexp.MustCompile(`certif|achievement|award`)
)

// commonVerbs are counted as action verbs for every role.
var commonVerbs = []string{
	"develop", "build", "design", "implement", "create", "lead", "manage",
	"improve", "optimize", "deploy", "automate", "analyze", "collaborate",
	"launch", "deliver", "reduce", "increase", "achieve", "integrate", "maintain",
}

// irregularVerbs have past forms the suffix rule cannot produce.
var irregularVerbs = []string{"built", "led"}

// actionVerbRes holds one compiled alternation per role so a verb that
// several sources list is only counted once per occurrence.
var actionVerbRes = func() map[roles.ID]*regexp.Regexp {
	m := make(map[roles.ID]*regexp.Regexp)
	for _, info := range roles.All() {
		m[info.ID] = compileVerbs(roles.MustFor(info.ID).ExperienceKeywords)
	}
	return m
}()

func compileVerbs(keywords []string) *regexp.Regexp {
	seen := make(map[string]bool)
	var alts []string
	add := func(a string) {
		if !seen[a] {
			seen[a] = true
			alts = append(alts, a)
		}
	}
	for _, kw := range keywords {
		add(regexp.QuoteMeta(kw) + `(?:ed|ing|s)?`)
	}
	for _, v := range commonVerbs {
		if strings.HasSuffix(v, "e") {
			add(regexp.QuoteMeta(strings.TrimSuffix(v, "e")) + `(?:e|ed|es|ing)`)
		} else {
			add(regexp.QuoteMeta(v) + `(?:ed|ing|s)?`)
		}
	}
	for _, v := range irregularVerbs {
		add(regexp.QuoteMeta(v))
	}
	// Longest first so a longer keyword wins over its prefix.
	sort.SliceStable(alts, func(i, j int) bool { return len(alts[i]) > len(alts[j]) })
	return regexp.MustCompile(`\b(?:` + strings.Join(alts, "|") + `)\b`)
}

// minPhoneDigits keeps year ranges and other short digit runs from
// passing as phone numbers.
const minPhoneDigits = 10

func hasPhone(text string) bool {
	for _, m := range phoneRe.FindAllString(text, -1) {
		digits := 0
		for _, r := range m {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits >= minPhoneDigits {
			return true
		}
	}
	return false
}

func hasContact(text string) bool {
	return contactRe.MatchString(text) || hasPhone(text)
}

func countMatches(res []*regexp.Regexp, text string) int {
	n := 0
	for _, re := range res {
		n += len(re.FindAllStringIndex(text, -1))
	}
	return n
}

func anyMatch(res []*regexp.Regexp, text string) bool {
	for _, re := range res {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
