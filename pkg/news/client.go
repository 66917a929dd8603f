package news

// Article is the raw, loosely typed record a provider returns. Any field
// except Title may be empty; PublishedAt stays an ISO-8601 string until
// normalization so that parse failures surface downstream, per record.
type Article struct {
	Title       string
	Author      string
	Description string
	Content     string
	URL         string
	URLToImage  string
	Source      string
	PublishedAt string
}

type NewsClient interface {
	Fetch(limit int) ([]Article, error)
	Name() string
}
