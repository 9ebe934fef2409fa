package memory

import (
	"fmt"
	"time"

	"github.com/SscSPs/investment_club/internal/apperrors"
	"github.com/SscSPs/investment_club/internal/core/domain"
	"github.com/SscSPs/investment_club/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

// SeedOptions carry the parts of the initial state that come from configuration.
type SeedOptions struct {
	Goal domain.ContributionGoal
	// Now anchors the relative timestamps of seeded notifications.
	Now time.Time
}

// Banks lists the payout destinations offered for withdrawals.
var Banks = []string{
	"JPMorgan Chase",
	"Bank of America",
	"Wells Fargo",
	"Citibank",
	"U.S. Bank",
	"PNC Bank",
	"TD Bank",
	"Capital One",
}

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(fmt.Sprintf("bad fixture date %q: %v", s, err))
	}
	return t
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ref(s string) *string {
	return &s
}

// FixtureState builds the demo club the application starts with.
func FixtureState(opts SeedOptions) (*domain.ClubState, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	s := &domain.ClubState{
		Goal: opts.Goal,
		Members: []domain.Member{
			{ID: "1", Name: "Admin User", AvatarURL: "https://i.pravatar.cc/150?u=1", ContributionStatus: domain.ContributionPaid, Role: domain.RoleAdmin, WithdrawnProfit: money("50"), Email: "admin@clubapp.com", Phone: "123-456-7890", Bio: "Founding member and administrator for the Investment Club. Passionate about collaborative finance and technology."},
			{ID: "2", Name: "Alice Johnson", AvatarURL: "https://i.pravatar.cc/150?u=2", ContributionStatus: domain.ContributionPaid, Role: domain.RoleTreasurer, WithdrawnProfit: money("75"), Email: "alice.j@clubapp.com", Phone: "234-567-8901", Bio: "Web developer and UI/UX enthusiast. Excited to see our collective investments grow."},
			{ID: "3", Name: "Bob Williams", AvatarURL: "https://i.pravatar.cc/150?u=3", ContributionStatus: domain.ContributionPending, Role: domain.RoleMember, WithdrawnProfit: money("20"), Email: "bob.w@clubapp.com", Phone: "345-678-9012", Bio: "Backend engineer specializing in Python. I handle the data, you handle the decisions."},
			{ID: "4", Name: "Charlie Brown", AvatarURL: "https://i.pravatar.cc/150?u=4", ContributionStatus: domain.ContributionPaid, Role: domain.RoleMember, WithdrawnProfit: money("100"), Email: "charlie.b@clubapp.com", Phone: "456-789-0123", Bio: "Financial consultant for a major firm. Here to share insights and learn from the group."},
		},
		Transactions: []domain.Transaction{
			{TransactionID: "c1", MemberID: ref("2"), Description: "Monthly contribution", Type: domain.TxnDeposit, Status: domain.TxnCompleted, Date: day("2023-10-01"), Amount: money("100")},
			{TransactionID: "c2", MemberID: ref("3"), Description: "Monthly contribution", Type: domain.TxnDeposit, Status: domain.TxnCompleted, Date: day("2023-10-01"), Amount: money("100")},
			{TransactionID: "c3", MemberID: ref("1"), Description: "Monthly contribution", Type: domain.TxnDeposit, Status: domain.TxnCompleted, Date: day("2023-10-02"), Amount: money("100")},
			{TransactionID: "c4", MemberID: ref("4"), Description: "Monthly contribution", Type: domain.TxnDeposit, Status: domain.TxnCompleted, Date: day("2023-10-03"), Amount: money("100")},
			{TransactionID: "c5", MemberID: ref("2"), Description: "Monthly contribution", Type: domain.TxnDeposit, Status: domain.TxnCompleted, Date: day("2023-09-01"), Amount: money("100")},
			{TransactionID: "c6", MemberID: ref("1"), Description: "Monthly contribution", Type: domain.TxnDeposit, Status: domain.TxnCompleted, Date: day("2023-09-01"), Amount: money("100")},
			{TransactionID: "t1", Description: "Card deposit via Monnify", Type: domain.TxnDeposit, Status: domain.TxnCompleted, Date: day("2024-08-12"), Amount: money("250.00")},
			{TransactionID: "t2", Description: "Bank Transfer Deposit", Type: domain.TxnDeposit, Status: domain.TxnCompleted, Date: day("2024-07-15"), Amount: money("100.00")},
			{TransactionID: "t3", Description: "Withdrawal to JPMorgan Chase", Type: domain.TxnWithdrawal, Status: domain.TxnCompleted, Date: day("2024-07-10"), Amount: money("-50.00")},
			{TransactionID: "t4", Description: "Reinvested profit", Type: domain.TxnReinvestment, Status: domain.TxnCompleted, Date: day("2024-07-05"), Amount: money("75.25")},
			{TransactionID: "t5", Description: "Investment in Apple (AAPL)", Type: domain.TxnInvestment, Status: domain.TxnCompleted, Date: day("2024-06-20"), Amount: money("-1000.00")},
			{TransactionID: "t6", Description: "Automated Deposit", Type: domain.TxnDeposit, Status: domain.TxnCompleted, Date: day("2024-06-01"), Amount: money("100.00")},
			{TransactionID: "t7", Description: "Withdrawal Request", Type: domain.TxnWithdrawal, Status: domain.TxnPending, Date: day("2024-08-13"), Amount: money("-123.45")},
		},
		Investments: []domain.Investment{
			{ID: "1", Asset: "Apple Inc.", Ticker: "AAPL", AmountInvested: money("1000"), CurrentValue: money("1250"), Shares: money("5.8"), AuditFields: domain.NewAuditFields("1", day("2023-10-15"))},
			{ID: "2", Asset: "Invesco QQQ Trust", Ticker: "QQQ", AmountInvested: money("800"), CurrentValue: money("750"), Shares: money("2.1"), AuditFields: domain.NewAuditFields("1", day("2023-08-21"))},
			{ID: "3", Asset: "Vanguard S&P 500 ETF", Ticker: "VOO", AmountInvested: money("1200"), CurrentValue: money("1350"), Shares: money("3.2"), AuditFields: domain.NewAuditFields("1", day("2023-09-05"))},
		},
		Proposals: []domain.Proposal{
			{ID: "1", Title: "Invest in Apple (AAPL)", Description: "Proposal to allocate $1000 from our funds to purchase Apple Inc. stock.", ProposedBy: "2", Status: domain.ProposalPassed, Ballot: domain.Ballot{VotesFor: 3, VotesAgainst: 1, VotedIDs: []string{"1", "2", "3", "4"}}, CreatedAt: day("2023-10-05")},
			{ID: "2", Title: "Increase monthly contribution to $150", Description: "To accelerate our investment power, I propose we increase the monthly contribution from $100 to $150.", ProposedBy: "3", Status: domain.ProposalOpen, Ballot: domain.Ballot{VotesFor: 1, VotesAgainst: 1, VotedIDs: []string{"2", "3"}}, CreatedAt: day("2023-10-20")},
			{ID: "3", Title: "Sell QQQ position", Description: "Given the recent downturn, I suggest we sell our position in QQQ to cut losses.", ProposedBy: "4", Status: domain.ProposalFailed, Ballot: domain.Ballot{VotesFor: 1, VotesAgainst: 3, VotedIDs: []string{"1", "2", "3", "4"}}, CreatedAt: day("2023-10-10")},
		},
		BusinessListings: []domain.BusinessListing{
			{ID: "1", Name: "Alice's Web Design", Description: "Freelance web design and development services. Specializing in React and modern UI/UX.", OwnerID: "2", Website: "https://example.com", Contact: "alice@example.com", Status: domain.StatusApproved, AuditFields: domain.NewAuditFields("2", day("2023-09-10"))},
			{ID: "2", Name: "Charlie's Consulting", Description: "Business strategy and financial consulting for startups.", OwnerID: "4", Website: "https://example.com", Contact: "charlie@example.com", Status: domain.StatusApproved, AuditFields: domain.NewAuditFields("4", day("2023-09-12"))},
			{ID: "3", Name: "Bob's Backend Dev", Description: "Backend development services with Python/Django.", OwnerID: "3", Website: "https://example.com", Contact: "bob@example.com", Status: domain.StatusPending, AuditFields: domain.NewAuditFields("3", day("2023-10-25"))},
		},
		Events: []domain.Event{
			{ID: "1", Title: "Quarterly Review Meeting", Date: "2023-12-15", Time: "18:00", Location: "Zoom (Link to follow)", Description: "Discussing Q4 performance and Q1 2024 strategy.", Format: domain.EventOnline, Status: domain.StatusApproved, SubmittedBy: "1", AuditFields: domain.NewAuditFields("1", day("2023-11-01"))},
			{ID: "2", Title: "End of Year Social", Date: "2023-12-22", Time: "19:00", Location: "The Local Pub", Description: "A casual get-together to celebrate the year.", Format: domain.EventInPerson, Status: domain.StatusPending, SubmittedBy: "2", AuditFields: domain.NewAuditFields("2", day("2023-11-20"))},
		},
		AssistanceRequests: []domain.AssistanceRequest{
			{ID: "1", RequesterID: "3", Amount: money("500"), Purpose: "Emergency car repairs needed to commute to work.", Status: domain.StatusPending, Ballot: domain.Ballot{VotesFor: 1, VotedIDs: []string{"2"}}, RequestDate: day("2023-10-28")},
			{ID: "2", RequesterID: "4", Amount: money("250"), Purpose: "To cover an unexpected medical bill.", Status: domain.StatusApproved, Ballot: domain.Ballot{VotesFor: 4, VotedIDs: []string{"1", "2", "3", "4"}}, RequestDate: day("2023-09-15")},
		},
		Notifications: []domain.Notification{
			{ID: "1", Message: `Charlie Brown just posted a new event: "End of Year Social". Check it out!`, Timestamp: now.AddDate(0, 0, -2), Type: domain.NotificationEvent},
			{ID: "2", Message: `A new proposal "Increase monthly contribution to $150" has been created.`, Timestamp: now.AddDate(0, 0, -3), Read: true, Viewed: true, Type: domain.NotificationProposal},
			{ID: "3", Message: "Welcome to ClubApp! Your dashboard is ready.", Timestamp: now.AddDate(0, 0, -7), Read: true, Viewed: true, Type: domain.NotificationGeneral},
		},
	}

	seedAvailableProfit(s)

	if err := ValidateState(s); err != nil {
		return nil, fmt.Errorf("invalid fixtures: %w", err)
	}
	return s, nil
}

// seedAvailableProfit gives each member their contribution-weighted share of the
// portfolio gain less what they already withdrew, floored at zero.
func seedAvailableProfit(s *domain.ClubState) {
	profit := accounting.NetProfit(s.Investments)
	by := accounting.ContributionsBy(s.Transactions)
	total := decimal.Zero
	for _, amt := range by {
		total = total.Add(amt)
	}
	if !total.IsPositive() {
		return
	}
	for i := range s.Members {
		m := &s.Members[i]
		share := by[m.ID].Div(total).Mul(profit)
		available := share.Sub(m.WithdrawnProfit).Round(2)
		if available.IsNegative() {
			available = decimal.Zero
		}
		m.AvailableProfit = available
	}
}

// ValidateState checks the invariants every stored state must satisfy and
// reports all violations at once.
func ValidateState(s *domain.ClubState) error {
	var errs error
	invalid := func(format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf("%w: "+format, append([]any{apperrors.ErrValidation}, args...)...))
	}

	members := make(map[string]bool, len(s.Members))
	for _, m := range s.Members {
		if members[m.ID] {
			invalid("duplicate member id %s", m.ID)
		}
		members[m.ID] = true
		if !m.Role.IsValid() {
			invalid("member %s has unknown role %q", m.ID, m.Role)
		}
		if m.AvailableProfit.IsNegative() {
			invalid("member %s has negative available profit", m.ID)
		}
		if m.WithdrawnProfit.IsNegative() {
			invalid("member %s has negative withdrawn profit", m.ID)
		}
	}
	for _, t := range s.Transactions {
		if err := t.Validate(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("transaction %s: %w", t.TransactionID, err))
		}
		if t.MemberID != nil && !members[*t.MemberID] {
			invalid("transaction %s references unknown member %s", t.TransactionID, *t.MemberID)
		}
	}
	for _, p := range s.Proposals {
		if !p.Consistent() {
			invalid("proposal %s tally does not match its voters", p.ID)
		}
	}
	for _, r := range s.AssistanceRequests {
		if !r.Consistent() {
			invalid("assistance request %s tally does not match its voters", r.ID)
		}
		if !members[r.RequesterID] {
			invalid("assistance request %s references unknown member %s", r.ID, r.RequesterID)
		}
	}
	for _, w := range s.WithdrawalRequests {
		if !w.Amount.IsPositive() {
			invalid("withdrawal request %s has non-positive amount", w.ID)
		}
	}
	return errs
}
