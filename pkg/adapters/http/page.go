package http

// indexHTML renders the board and drives it with HTML5 drag and drop.
// Every interaction is posted to /dispatch as an action envelope and the page
// re-renders from /board whenever /events reports a change.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>Taskboard</title>
<style>
  body { background: #3179ba; font-family: sans-serif; margin: 0; padding: 20px; }
  #board { display: flex; align-items: flex-start; gap: 20px; }
  .list { background: #ebecf0; border-radius: 3px; width: 300px; min-height: 40px; padding: 8px; flex-shrink: 0; }
  .list.dragging { opacity: 0.3; }
  .title { font-weight: bold; padding: 6px 16px 12px; cursor: grab; }
  .task { background: #fff; border-radius: 3px; box-shadow: #091e4240 0 1px 0 0; margin-bottom: 0.5rem; padding: 0.5rem 1rem; }
  .add { background: #ffffff3d; border: none; border-radius: 3px; color: #000; cursor: pointer; padding: 10px 12px; text-align: left; width: 100%; }
  .list .add { color: #333; background: transparent; }
  #add-list { width: 300px; flex-shrink: 0; }
</style>
</head>
<body>
<div id="board"></div>
<script>
let board = { lists: [] };

async function dispatch(type, payload) {
  const res = await fetch('/dispatch', {
    method: 'POST',
    headers: { 'Content-Type': 'application/json' },
    body: JSON.stringify({ type, payload }),
  });
  if (res.ok) {
    board = await res.json();
  }
  return res.ok;
}

async function refresh() {
  const res = await fetch('/board');
  board = await res.json();
  render();
}

function render() {
  const root = document.getElementById('board');
  root.innerHTML = '';
  const dragged = board.draggedItem;

  board.lists.forEach((list, index) => {
    const col = document.createElement('div');
    col.className = 'list';
    if (dragged && dragged.type === 'LIST' && dragged.id === list.id) {
      col.classList.add('dragging');
    }
    col.draggable = true;

    col.addEventListener('dragstart', () => {
      dispatch('SET_DRAGGED_ITEM', { type: 'LIST', id: list.id, index, text: list.text });
    });
    col.addEventListener('dragover', async (e) => {
      e.preventDefault();
      const item = board.draggedItem;
      if (!item || item.type !== 'LIST' || item.index === index) return;
      if (await dispatch('MOVE_LIST', { dragIndex: item.index, hoverIndex: index })) {
        await dispatch('SET_DRAGGED_ITEM', Object.assign({}, item, { index }));
      }
    });
    col.addEventListener('dragend', () => dispatch('SET_DRAGGED_ITEM', null));

    const title = document.createElement('div');
    title.className = 'title';
    title.textContent = list.text;
    col.appendChild(title);

    list.tasks.forEach((task) => {
      const card = document.createElement('div');
      card.className = 'task';
      card.textContent = task.text;
      col.appendChild(card);
    });

    // New tasks are placed next to an existing one, so empty lists cannot grow.
    if (list.tasks.length > 0) {
      const add = document.createElement('button');
      add.className = 'add';
      add.textContent = '+ Add another task';
      add.onclick = () => {
        const text = prompt('Task');
        if (text !== null) dispatch('ADD_TASK', { text, taskId: list.tasks[0].id });
      };
      col.appendChild(add);
    }
    root.appendChild(col);
  });

  const addList = document.createElement('button');
  addList.id = 'add-list';
  addList.className = 'add';
  addList.textContent = '+ Add another list';
  addList.onclick = () => {
    const text = prompt('List');
    if (text !== null) dispatch('ADD_LIST', text);
  };
  root.appendChild(addList);
}

const events = new EventSource('/events');
events.addEventListener('board', (e) => { board = JSON.parse(e.data); render(); });
events.addEventListener('diff', refresh);
refresh();
</script>
</body>
</html>
`
