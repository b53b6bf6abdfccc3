package evaluator

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audithook/internal/domain"
)

const dynamicFeeHook = `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.20;

import {BaseHook} from "v4-core/src/hooks/BaseHook.sol";

contract DynamicFeeHook is BaseHook {
    mapping(bytes32 => uint24) public poolFees;

    function getHooksCalls() public pure override returns (Hooks.Calls memory) {
        return Hooks.Calls({beforeInitialize: true, beforeSwap: true});
    }

    function beforeSwap(
        address,
        PoolKey calldata key,
        IPoolManager.SwapParams calldata params,
        bytes calldata
    ) external override returns (bytes4) {
        bytes32 poolId = keccak256(abi.encode(key));
        poolFees[poolId] = poolFees[poolId] + 10;
        return BaseHook.beforeSwap.selector;
    }
}`

func all() domain.AuditOptions { return domain.DefaultAuditOptions() }

func titles(fs []domain.Finding) []string {
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.Title)
	}
	return out
}

func TestEvaluate_HookExample(t *testing.T) {
	res := New().Evaluate(domain.AuditRequest{ContractSource: dynamicFeeHook, Options: all()})

	assert.Equal(t, []string{
		"Floating pragma",
		"Verify hook address flags",
		"Hook callbacks lack access control",
	}, titles(res.Findings))
	assert.Equal(t, "line 2", res.Findings[0].Location)
	assert.Equal(t, "line 9", res.Findings[1].Location)
	assert.Equal(t, "line 13", res.Findings[2].Location)
	assert.Equal(t, 3, res.IssuesCount)
	assert.Equal(t, 100-3-1-8, res.SecurityScore)
	assert.Equal(t, 100, res.GasEfficiency)
}

func TestEvaluate_Deterministic(t *testing.T) {
	svc := New()
	req := domain.AuditRequest{ContractSource: dynamicFeeHook + "\nfunction kill() public { selfdestruct(payable(tx.origin)); }", Options: all()}

	a, err := json.Marshal(svc.Evaluate(req))
	require.NoError(t, err)
	b, err := json.Marshal(New().Evaluate(req))
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestEvaluate_AllDisabled(t *testing.T) {
	res := New().Evaluate(domain.AuditRequest{ContractSource: "contract X { function f() public { selfdestruct(payable(tx.origin)); } }"})

	assert.NotNil(t, res.Findings)
	assert.Empty(t, res.Findings)
	assert.Equal(t, 0, res.IssuesCount)
	assert.Equal(t, NeutralScore, res.SecurityScore)
	assert.Equal(t, NeutralScore, res.GasEfficiency)

	out, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"findings":[]`)
}

func TestEvaluate_DisabledCategoryContributesNothing(t *testing.T) {
	opts := all()
	opts.VulnerabilityScan = false
	res := New().Evaluate(domain.AuditRequest{ContractSource: "// SPDX-License-Identifier: MIT\nrequire(tx.origin == owner);", Options: opts})

	for _, f := range res.Findings {
		assert.NotEqual(t, domain.CategoryVulnerability, f.Category)
	}
	assert.Equal(t, NeutralScore, res.SecurityScore)
}

func TestEvaluate_InvariantsHold(t *testing.T) {
	sources := []string{
		"x",
		"}}}{{{ not solidity at all",
		dynamicFeeHook,
		strings.Repeat("selfdestruct(payable(msg.sender));\n", 20),
		strings.Repeat("for (uint i = 0; i < a.length; i++) { require(a[i] > 0, \"this revert string is definitely too long\"); }\n", 30),
	}
	combos := []domain.AuditOptions{
		all(),
		{VulnerabilityScan: true},
		{GasOptimization: true},
		{BestPractices: true, AIRecommendations: true},
		{},
	}
	svc := New()
	for _, src := range sources {
		for _, opts := range combos {
			res := svc.Evaluate(domain.AuditRequest{ContractSource: src, Options: opts})
			assert.Equal(t, len(res.Findings), res.IssuesCount)
			assert.GreaterOrEqual(t, res.SecurityScore, 0)
			assert.LessOrEqual(t, res.SecurityScore, 100)
			assert.GreaterOrEqual(t, res.GasEfficiency, 0)
			assert.LessOrEqual(t, res.GasEfficiency, 100)
		}
	}
}

func TestEvaluate_ScoreClampsAtZero(t *testing.T) {
	src := strings.Repeat("selfdestruct(payable(msg.sender));\n", 10)
	res := New().Evaluate(domain.AuditRequest{ContractSource: src, Options: domain.AuditOptions{VulnerabilityScan: true}})

	assert.Equal(t, 10, res.IssuesCount)
	assert.Equal(t, 0, res.SecurityScore)
	assert.Equal(t, domain.SeverityCritical, res.Findings[0].Severity)
}

func TestEvaluate_GasChecks(t *testing.T) {
	src := "for (uint i = 0; i < items.length; i++) {\n" +
		"    require(items[i] > 0, \"item amount must be strictly greater than zero\");\n" +
		"}"
	res := New().Evaluate(domain.AuditRequest{ContractSource: src, Options: domain.AuditOptions{GasOptimization: true}})

	assert.Equal(t, []string{
		"Array length read on every iteration",
		"Postfix increment in loop",
		"Long revert string",
		"Comparison with zero",
	}, titles(res.Findings))
	assert.Equal(t, 100-6-3-3-3, res.GasEfficiency)
	assert.Equal(t, NeutralScore, res.SecurityScore)
}

func TestEvaluate_CommentsIgnored(t *testing.T) {
	src := "// SPDX-License-Identifier: MIT\n// tx.origin is never used\n/* selfdestruct(\n delegatecall */\nuint x = 1;"
	res := New().Evaluate(domain.AuditRequest{ContractSource: src, Options: all()})
	assert.Empty(t, res.Findings)
}

func TestEvaluate_CommentMarkersInStrings(t *testing.T) {
	src := "string constant P = \"/*\";\nfunction kill() public { selfdestruct(payable(msg.sender)); }"
	res := New().Evaluate(domain.AuditRequest{ContractSource: src, Options: domain.AuditOptions{VulnerabilityScan: true}})
	require.Len(t, res.Findings, 1)
	assert.Equal(t, domain.SeverityCritical, res.Findings[0].Severity)
	assert.Equal(t, "line 2", res.Findings[0].Location)
	assert.Equal(t, 75, res.SecurityScore)

	src = "string constant U = \"https://x.org\"; address a = tx.origin;"
	res = New().Evaluate(domain.AuditRequest{ContractSource: src, Options: domain.AuditOptions{VulnerabilityScan: true}})
	require.Len(t, res.Findings, 1)
	assert.Equal(t, "Authorization through tx.origin", res.Findings[0].Title)
}

func TestEvaluate_LegacyCompiler(t *testing.T) {
	src := "// SPDX-License-Identifier: MIT\npragma solidity 0.6.12;"
	res := New().Evaluate(domain.AuditRequest{ContractSource: src, Options: all()})

	require.Len(t, res.Findings, 1)
	assert.Equal(t, "Compiler without checked arithmetic", res.Findings[0].Title)
	assert.Equal(t, domain.SeverityMedium, res.Findings[0].Severity)
}

func TestEvaluate_AddressChecksum(t *testing.T) {
	good := "address constant A = 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed;"
	lower := "address constant B = 0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed;"
	bad := "address constant C = 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAeD;"
	opts := domain.AuditOptions{BestPractices: true}

	src := "// SPDX-License-Identifier: MIT\n" + good + "\n" + lower + "\n" + bad
	res := New().Evaluate(domain.AuditRequest{ContractSource: src, Options: opts})

	require.Len(t, res.Findings, 1)
	assert.Equal(t, "Invalid address checksum", res.Findings[0].Title)
	assert.Equal(t, "line 4", res.Findings[0].Location)
}

func TestEvaluate_MissingLicense(t *testing.T) {
	res := New().Evaluate(domain.AuditRequest{ContractSource: "contract A {}", Options: domain.AuditOptions{BestPractices: true}})

	require.Len(t, res.Findings, 1)
	assert.Equal(t, "Missing SPDX license identifier", res.Findings[0].Title)
	assert.Empty(t, res.Findings[0].Location)
}

func TestEvaluate_HookWithoutPermissions(t *testing.T) {
	src := "// SPDX-License-Identifier: MIT\ncontract H is BaseHook {\n function afterSwap(address) external onlyPoolManager {}\n}"
	res := New().Evaluate(domain.AuditRequest{ContractSource: src, Options: domain.AuditOptions{AIRecommendations: true}})

	require.Len(t, res.Findings, 1)
	assert.Equal(t, "Hook permissions not declared", res.Findings[0].Title)
	assert.Equal(t, "line 2", res.Findings[0].Location)
}
