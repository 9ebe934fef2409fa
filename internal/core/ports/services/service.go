package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Auth         AuthSvcFacade
	Member       MemberSvcFacade
	Ledger       LedgerSvcFacade
	Investment   InvestmentSvcFacade
	Voting       VotingSvcFacade
	Approval     ApprovalSvcFacade
	Request      RequestSvcFacade
	Distribution DistributionSvcFacade
	Comment      CommentSvcFacade
	Notification NotificationSvcFacade
	Reporting    ReportingSvcFacade
	Insight      InsightSvcFacade
}
