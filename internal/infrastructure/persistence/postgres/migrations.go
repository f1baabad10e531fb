package postgres

// GetMigrations returns all embedded migrations.
func GetMigrations() []Migration {
	return []Migration{
		{
			Version: 1,
			Name:    "create_teams",
			UpSQL:   migration001Up,
			DownSQL: migration001Down,
		},
		{
			Version: 2,
			Name:    "create_catalog",
			UpSQL:   migration002Up,
			DownSQL: migration002Down,
		},
		{
			Version: 3,
			Name:    "create_planning",
			UpSQL:   migration003Up,
			DownSQL: migration003Down,
		},
	}
}

const migration001Up = `
-- Migration: Create teams and members
-- Version: 001

CREATE TABLE IF NOT EXISTS teams (
    id VARCHAR(24) PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

-- Members live inside their team; usernames are unique per team only.
CREATE TABLE IF NOT EXISTS members (
    team_id VARCHAR(24) NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
    username VARCHAR(64) NOT NULL,
    password_hash TEXT NOT NULL,
    joined_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    PRIMARY KEY (team_id, username)
);

CREATE INDEX IF NOT EXISTS idx_members_team ON members(team_id, joined_at);
`

const migration001Down = `
DROP TABLE IF EXISTS members;
DROP TABLE IF EXISTS teams;
`

const migration002Up = `
-- Migration: Create the problem catalog and the progress log
-- Version: 002

CREATE TABLE IF NOT EXISTS problems (
    id UUID PRIMARY KEY,
    team_id VARCHAR(24) NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
    name VARCHAR(255) NOT NULL,
    link TEXT NOT NULL,
    rating VARCHAR(64) NOT NULL DEFAULT 'Custom',
    platform VARCHAR(20) NOT NULL DEFAULT 'Custom',
    sheet VARCHAR(64) NOT NULL,
    sort_order INTEGER NOT NULL DEFAULT 0,
    created_by VARCHAR(64) NOT NULL,
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    CONSTRAINT valid_platform CHECK (platform IN ('TLE', 'USACO', 'CSES', 'Custom'))
);

-- Sheet listings sort by rating then order; reordering walks one
-- (team, sheet, rating) group at a time.
CREATE INDEX IF NOT EXISTS idx_problems_sheet ON problems(team_id, sheet, rating, sort_order);
CREATE INDEX IF NOT EXISTS idx_problems_name ON problems(team_id, LOWER(name));

-- Progress rows are keyed by the (team, user, problem) triple. A record
-- outlives its problem so the solve history survives sheet edits.
CREATE TABLE IF NOT EXISTS progress (
    id UUID PRIMARY KEY,
    team_id VARCHAR(24) NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
    username VARCHAR(64) NOT NULL,
    problem_id UUID NOT NULL,
    status VARCHAR(20) NOT NULL DEFAULT 'none',
    solved_at TIMESTAMP WITH TIME ZONE,
    notes TEXT NOT NULL DEFAULT '',
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    UNIQUE(team_id, username, problem_id),
    CONSTRAINT valid_status CHECK (status IN ('solved', 'todo', 'revision', 'skipped', 'none'))
);

CREATE INDEX IF NOT EXISTS idx_progress_team ON progress(team_id, updated_at DESC);
CREATE INDEX IF NOT EXISTS idx_progress_user ON progress(team_id, username);
CREATE INDEX IF NOT EXISTS idx_progress_solved ON progress(team_id, username) WHERE status = 'solved';
`

const migration002Down = `
DROP TABLE IF EXISTS progress;
DROP TABLE IF EXISTS problems;
`

const migration003Up = `
-- Migration: Create sheets, contests and to-learn topics
-- Version: 003

CREATE TABLE IF NOT EXISTS sheets (
    id UUID PRIMARY KEY,
    team_id VARCHAR(24) NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
    name VARCHAR(100) NOT NULL,
    created_by VARCHAR(64) NOT NULL,
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_sheets_team ON sheets(team_id, created_at);

CREATE TABLE IF NOT EXISTS contests (
    id UUID PRIMARY KEY,
    team_id VARCHAR(24) NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
    name VARCHAR(255) NOT NULL,
    platform VARCHAR(20) NOT NULL DEFAULT 'Codeforces',
    date TIMESTAMP WITH TIME ZONE NOT NULL,
    link TEXT NOT NULL DEFAULT '',
    created_by VARCHAR(64) NOT NULL,
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    CONSTRAINT valid_contest_platform CHECK (platform IN ('Codeforces', 'LeetCode', 'CodeChef', 'Other'))
);

CREATE INDEX IF NOT EXISTS idx_contests_team_date ON contests(team_id, date);

CREATE TABLE IF NOT EXISTS topics (
    id UUID PRIMARY KEY,
    team_id VARCHAR(24) NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
    username VARCHAR(64) NOT NULL,
    name VARCHAR(255) NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    status VARCHAR(20) NOT NULL DEFAULT 'not-started',
    priority VARCHAR(10) NOT NULL DEFAULT 'medium',
    resources TEXT[] NOT NULL DEFAULT '{}',
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    CONSTRAINT valid_topic_status CHECK (status IN ('not-started', 'learning', 'completed', 'on-hold')),
    CONSTRAINT valid_topic_priority CHECK (priority IN ('low', 'medium', 'high'))
);

CREATE INDEX IF NOT EXISTS idx_topics_user ON topics(team_id, username, created_at DESC);
`

const migration003Down = `
DROP TABLE IF EXISTS topics;
DROP TABLE IF EXISTS contests;
DROP TABLE IF EXISTS sheets;
`
