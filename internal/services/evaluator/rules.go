package evaluator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"audithook/internal/domain"
)

// check inspects a parsed source and reports findings in line order.
type check func(src *source) []domain.Finding

func at(l line) string { return fmt.Sprintf("line %d", l.no) }

// perLine reports one finding for every code line matched by fn.
func perLine(cat domain.Category, sev domain.Severity, title, desc string, fn func(string) bool) check {
	return func(src *source) []domain.Finding {
		var out []domain.Finding
		for _, l := range src.lines {
			if fn(l.text) {
				out = append(out, domain.Finding{Category: cat, Severity: sev, Title: title, Description: desc, Location: at(l)})
			}
		}
		return out
	}
}

func matches(re *regexp.Regexp) func(string) bool { return re.MatchString }

func containsAny(subs ...string) func(string) bool {
	return func(s string) bool {
		for _, sub := range subs {
			if strings.Contains(s, sub) {
				return true
			}
		}
		return false
	}
}

var (
	reValueCall     = regexp.MustCompile(`\.call\{[^}]*\bvalue\s*:|\.call\.value\(`)
	reUnchecked     = regexp.MustCompile(`\bunchecked\s*\{`)
	rePragma        = regexp.MustCompile(`^pragma\s+solidity\s+([^;]+);?`)
	rePragmaMinor   = regexp.MustCompile(`0\.(\d+)`)
	reFloating      = regexp.MustCompile(`^pragma\s+solidity\s*(\^|>=|>)`)
	reLoopLength    = regexp.MustCompile(`\bfor\s*\([^;]*;[^;]*\.length\b`)
	reLoopPostfix   = regexp.MustCompile(`\bfor\s*\(.*;\s*\w+\+\+\s*\)`)
	reRevertString  = regexp.MustCompile(`\b(require|revert)\s*\(.*"([^"]*)"`)
	reGreaterZero   = regexp.MustCompile(`\brequire\s*\(\s*[\w.\[\]]+\s*>\s*0\s*[,)]`)
	reAddress       = regexp.MustCompile(`\b0x[0-9a-fA-F]{40}\b`)
	reBaseHook      = regexp.MustCompile(`\bcontract\s+\w+\s+is\s+[^{]*\bBaseHook\b`)
	reHookCallback  = regexp.MustCompile(`\bfunction\s+(before|after)(Initialize|Swap|AddLiquidity|RemoveLiquidity|Donate)\s*\(`)
	rePermissions   = regexp.MustCompile(`\bfunction\s+(getHookPermissions|getHooksCalls)\s*\(`)
	reAccessControl = regexp.MustCompile(`\b(onlyPoolManager|onlyByPoolManager|poolManagerOnly|onlyOwner|onlyRole)\b`)
)

const maxRevertStringBytes = 32

var vulnerabilityChecks = []check{
	perLine(domain.CategoryVulnerability, domain.SeverityCritical,
		"Use of selfdestruct",
		"selfdestruct can permanently remove the contract and force-send its balance; guard it or remove it.",
		containsAny("selfdestruct(", "suicide(")),
	perLine(domain.CategoryVulnerability, domain.SeverityHigh,
		"Authorization through tx.origin",
		"tx.origin is the externally owned account that started the transaction; a malicious intermediate contract can pass this check. Use msg.sender.",
		containsAny("tx.origin")),
	perLine(domain.CategoryVulnerability, domain.SeverityHigh,
		"Use of delegatecall",
		"delegatecall executes foreign code against this contract's storage; the target must be trusted and immutable.",
		containsAny(".delegatecall(")),
	perLine(domain.CategoryVulnerability, domain.SeverityMedium,
		"Low-level call transferring value",
		"External calls that send value can re-enter the contract. Update state before the call or add a reentrancy guard.",
		matches(reValueCall)),
	perLine(domain.CategoryVulnerability, domain.SeverityLow,
		"Timestamp dependence",
		"block.timestamp can be nudged by the sequencer; avoid it for randomness or tight deadlines.",
		containsAny("block.timestamp")),
	perLine(domain.CategoryVulnerability, domain.SeverityLow,
		"Unchecked arithmetic block",
		"Overflow checks are disabled inside unchecked blocks; confirm every operation is bounded.",
		matches(reUnchecked)),
	checkLegacyCompiler,
}

var gasChecks = []check{
	perLine(domain.CategoryGas, domain.SeverityLow,
		"Array length read on every iteration",
		"Cache the array length in a local variable before the loop.",
		matches(reLoopLength)),
	perLine(domain.CategoryGas, domain.SeverityInfo,
		"Postfix increment in loop",
		"Prefer ++i (or an unchecked increment) over i++ in loop headers.",
		matches(reLoopPostfix)),
	perLine(domain.CategoryGas, domain.SeverityInfo,
		"Long revert string",
		"Revert strings longer than 32 bytes cost extra deployment and runtime gas; use custom errors.",
		longRevertString),
	perLine(domain.CategoryGas, domain.SeverityInfo,
		"Comparison with zero",
		"For unsigned integers != 0 is cheaper than > 0.",
		matches(reGreaterZero)),
}

var bestPracticeChecks = []check{
	checkLicense,
	perLine(domain.CategoryBestPractice, domain.SeverityLow,
		"Floating pragma",
		"Lock the compiler version so the deployed bytecode matches the audited build.",
		matches(reFloating)),
	checkAddressChecksums,
}

var aiChecks = []check{
	checkHookPermissions,
	checkHookAccessControl,
}

func longRevertString(text string) bool {
	m := reRevertString.FindStringSubmatch(text)
	return m != nil && len(m[2]) > maxRevertStringBytes
}

func checkLegacyCompiler(src *source) []domain.Finding {
	l, ok := src.first(rePragma.MatchString)
	if !ok {
		return nil
	}
	m := rePragmaMinor.FindStringSubmatch(l.text)
	if m == nil {
		return nil
	}
	minor, err := strconv.Atoi(m[1])
	if err != nil || minor >= 8 {
		return nil
	}
	return []domain.Finding{{
		Category:    domain.CategoryVulnerability,
		Severity:    domain.SeverityMedium,
		Title:       "Compiler without checked arithmetic",
		Description: "Solidity versions before 0.8 wrap on overflow; use SafeMath or upgrade the compiler.",
		Location:    at(l),
	}}
}

func checkLicense(src *source) []domain.Finding {
	if strings.Contains(src.raw, "SPDX-License-Identifier") {
		return nil
	}
	return []domain.Finding{{
		Category:    domain.CategoryBestPractice,
		Severity:    domain.SeverityInfo,
		Title:       "Missing SPDX license identifier",
		Description: "Add an SPDX-License-Identifier comment to the top of the file.",
	}}
}

// checkAddressChecksums flags mixed-case address literals whose casing is not
// a valid EIP-55 checksum. All-lower and all-upper literals carry no checksum.
func checkAddressChecksums(src *source) []domain.Finding {
	var out []domain.Finding
	for _, l := range src.lines {
		for _, addr := range reAddress.FindAllString(l.text, -1) {
			digits := addr[2:]
			if strings.ToLower(digits) == digits || strings.ToUpper(digits) == digits {
				continue
			}
			if common.HexToAddress(addr).Hex() == addr {
				continue
			}
			out = append(out, domain.Finding{
				Category:    domain.CategoryBestPractice,
				Severity:    domain.SeverityMedium,
				Title:       "Invalid address checksum",
				Description: fmt.Sprintf("Address literal %s does not match its EIP-55 checksum; it may contain a typo.", addr),
				Location:    at(l),
			})
		}
	}
	return out
}

func checkHookPermissions(src *source) []domain.Finding {
	decl, ok := src.first(reBaseHook.MatchString)
	if !ok {
		return nil
	}
	if perm, ok := src.first(rePermissions.MatchString); ok {
		return []domain.Finding{{
			Category:    domain.CategoryAI,
			Severity:    domain.SeverityInfo,
			Title:       "Verify hook address flags",
			Description: "Uniswap v4 derives enabled callbacks from the hook address bits; mine the deployment address so its flags match the declared permissions.",
			Location:    at(perm),
		}}
	}
	return []domain.Finding{{
		Category:    domain.CategoryAI,
		Severity:    domain.SeverityMedium,
		Title:       "Hook permissions not declared",
		Description: "Contracts extending BaseHook must declare which callbacks they implement; the pool manager will reject or skip undeclared callbacks.",
		Location:    at(decl),
	}}
}

func checkHookAccessControl(src *source) []domain.Finding {
	cb, ok := src.first(reHookCallback.MatchString)
	if !ok || src.contains(reAccessControl.MatchString) {
		return nil
	}
	return []domain.Finding{{
		Category:    domain.CategoryAI,
		Severity:    domain.SeverityMedium,
		Title:       "Hook callbacks lack access control",
		Description: "Hook callbacks that write state should only be callable by the pool manager; add an onlyPoolManager modifier.",
		Location:    at(cb),
	}}
}
