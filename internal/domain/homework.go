package domain

type HomeworkStatus string

const (
	HomeworkStatusApproved  HomeworkStatus = "approved"
	HomeworkStatusReviewing HomeworkStatus = "reviewing"
	HomeworkStatusRejected  HomeworkStatus = "rejected"
)

var homeworkVerdicts = map[HomeworkStatus]string{
	HomeworkStatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	HomeworkStatusReviewing: "Работа взята на проверку ревьюером.",
	HomeworkStatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict возвращает текст вердикта для статуса, false для недокументированного статуса
func (s HomeworkStatus) Verdict() (string, bool) {
	verdict, ok := homeworkVerdicts[s]
	return verdict, ok
}

// StatusChange одна запись из ответа API, прошедшая проверку полей
type StatusChange struct {
	HomeworkName string
	Status       HomeworkStatus
}
