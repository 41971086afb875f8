package help

const QuickstartYAML = `# daily-ratings Quick Start

setup:
  password: |
    export DAILY_RATING_PASSWORD=...   # shared secret for every user
    daily-ratings login --password "$DAILY_RATING_PASSWORD"

windows:
  all: "Every entry (default)"
  7d: "Entries from the last 7 days, counted from today"
  30d: "Entries from the last 30 days, counted from today"

commands:
  add_today: |
    daily-ratings add --user Martin --rating 7 --comment "long walk with the dog"

  edit_day: |
    daily-ratings show --user Martin --date 2024-01-03
    daily-ratings add --user Martin --date 2024-01-03 --rating 6

  delete_day: |
    daily-ratings delete --user Martin --date 2024-01-03

  review: |
    daily-ratings list --user Martin
    daily-ratings chart --user Martin --view weekly --window 30d
    daily-ratings bigrams --user Martin --window 7d --top 10

  stopwords: |
    daily-ratings bigrams --user Martin --stopword work --stopword office
    daily-ratings bigrams --user Martin --per-token-stopwords

storage:
  file: "daily_ratings_<user>.csv in data_dir"
  columns: "date,rating,comment"
`
