package repoargs

type RepositoryName string

const (
	UserRepoName          RepositoryName = "user"
	TransactionRepoName   RepositoryName = "transaction"
	BundleRepoName        RepositoryName = "bundle"
	TicketRepoName        RepositoryName = "ticket"
	StaffRepoName         RepositoryName = "staff"
	CommunicationRepoName RepositoryName = "communication"
	NotificationRepoName  RepositoryName = "notification"
	SettingsRepoName      RepositoryName = "settings"
	BackupRepoName        RepositoryName = "backup"
)

// BatchExecQueryRow обратный вызов для каждого элемента батч запроса.
type BatchExecQueryRow func(i int, err error)
