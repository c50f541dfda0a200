package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS debts (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    name         TEXT NOT NULL,
    balance      REAL NOT NULL,
    rate         REAL NOT NULL,
    emi          REAL NOT NULL,
    type         TEXT NOT NULL DEFAULT 'unsecured',
    position     INTEGER NOT NULL DEFAULT 0,
    created_at   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_debts_position ON debts(position);
`
