package banking

import "github.com/kbukum/authzkit/rebac"

// Object types.
const (
	TypeBank    = "bank"
	TypeBranch  = "branch"
	TypeAccount = "account"
	TypeLoan    = "loan"
)

// Relation names.
const (
	RelAdmin       = "admin"
	RelManager     = "manager"
	RelTeller      = "teller"
	RelOwner       = "owner"
	RelCoOwner     = "co_owner"
	RelBorrower    = "borrower"
	RelCoBorrower  = "co_borrower"
	RelLoanOfficer = "loan_officer"

	RelParentBank   = "parent_bank"
	RelParentBranch = "parent_branch"
)

// Permissions.
const (
	PermAdminister     = "can_administer"
	PermManage         = "can_manage"
	PermViewAccounts   = "can_view_accounts"
	PermAcceptDeposits = "can_accept_deposits"
	PermView           = "can_view"
	PermDeposit        = "can_deposit"
	PermWithdraw       = "can_withdraw"
	PermTransfer       = "can_transfer"
	PermApprove        = "can_approve"
	PermModify         = "can_modify"
)

// Rules returns the banking rule set.
//
// Branch-level permissions exist to be delegation targets for account and
// loan checks: tellers and managers can view accounts, only tellers accept
// deposits over the counter, only managers authorize withdrawals and loan
// decisions. Bank admins administer the bank itself but hold no implicit
// rights on branch resources.
func Rules() *rebac.RuleSet {
	rs := rebac.NewRuleSet()

	rs.Register(TypeBank, PermAdminister,
		rebac.DirectRelation{Relation: RelAdmin},
	)
	rs.Register(TypeBank, PermManage,
		rebac.DirectRelation{Relation: RelManager},
	)

	rs.Register(TypeBranch, PermViewAccounts,
		rebac.DirectRelation{Relation: RelManager},
		rebac.DirectRelation{Relation: RelTeller},
	)
	rs.Register(TypeBranch, PermAcceptDeposits,
		rebac.DirectRelation{Relation: RelTeller},
	)
	rs.Register(TypeBranch, PermManage,
		rebac.DirectRelation{Relation: RelManager},
	)

	rs.Register(TypeAccount, PermView,
		rebac.DirectRelation{Relation: RelOwner},
		rebac.DirectRelation{Relation: RelCoOwner},
		rebac.ParentDelegate{Parent: RelParentBranch, Permission: PermViewAccounts},
	)
	rs.Register(TypeAccount, PermDeposit,
		rebac.DirectRelation{Relation: RelOwner},
		rebac.DirectRelation{Relation: RelCoOwner},
		rebac.ParentDelegate{Parent: RelParentBranch, Permission: PermAcceptDeposits},
	)
	rs.Register(TypeAccount, PermWithdraw,
		rebac.DirectRelation{Relation: RelOwner},
		rebac.DirectRelation{Relation: RelCoOwner},
		rebac.ParentDelegate{Parent: RelParentBranch, Permission: PermManage},
	)
	rs.Register(TypeAccount, PermTransfer,
		rebac.DirectRelation{Relation: RelOwner},
		rebac.DirectRelation{Relation: RelCoOwner},
	)

	rs.Register(TypeLoan, PermView,
		rebac.DirectRelation{Relation: RelBorrower},
		rebac.DirectRelation{Relation: RelCoBorrower},
		rebac.DirectRelation{Relation: RelLoanOfficer},
		rebac.ParentDelegate{Parent: RelParentBranch, Permission: PermManage},
	)
	rs.Register(TypeLoan, PermApprove,
		rebac.DirectRelation{Relation: RelLoanOfficer},
		rebac.ParentDelegate{Parent: RelParentBranch, Permission: PermManage},
	)
	rs.Register(TypeLoan, PermModify,
		rebac.DirectRelation{Relation: RelLoanOfficer},
	)

	// Account statements are the gated content for filtered reads.
	rs.SetReadPermission(TypeAccount, PermView)

	return rs
}
